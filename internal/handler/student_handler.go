package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Azad-roy/Online-Exam-System/internal/attempt"
	"github.com/Azad-roy/Online-Exam-System/internal/middleware"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StudentHandler serves the student portal: quiz catalog, dashboard
// aggregates, attempt starts, and result history.
type StudentHandler struct {
	catalogService *service.CatalogService
	resultService  *service.ResultService
	attemptService *service.AttemptService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	catalogService *service.CatalogService,
	resultService *service.ResultService,
	attemptService *service.AttemptService,
) *StudentHandler {
	return &StudentHandler{
		catalogService: catalogService,
		resultService:  resultService,
		attemptService: attemptService,
	}
}

// Catalog godoc
// GET /api/v1/student/quizzes
// Lists every available quiz with display metadata. No quizzes yields an
// empty list, not an error.
func (h *StudentHandler) Catalog(c *gin.Context) {
	entries, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": entries})
}

// Dashboard godoc
// GET /api/v1/student/dashboard
// Returns the student's aggregates plus the three most recent results.
func (h *StudentHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	stats, err := h.resultService.StudentStats(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	recent, err := h.resultService.History(c.Request.Context(), claims.UserID, 3)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats":          stats,
		"recent_results": recent,
	})
}

// History godoc
// GET /api/v1/student/results?limit=N
// Returns the student's result history, most recent first.
func (h *StudentHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		limit = n
	}

	records, err := h.resultService.History(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": records})
}

// StartAttempt godoc
// POST /api/v1/student/quizzes/:quiz_id/attempt
// Opens a live attempt on the selected quiz and returns its initial
// state with the sanitized question set. A student with an attempt
// already in flight gets a conflict.
func (h *StudentHandler) StartAttempt(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	a, err := h.attemptService.Start(c.Request.Context(), claims.UserID, quizID)
	if err != nil {
		switch {
		case errors.Is(err, attempt.ErrInProgress):
			response.Fail(c, http.StatusConflict, response.ErrAttemptInProgress)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrNoQuizSelected)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"attempt":   a.Snapshot(),
		"questions": a.Questions(),
	})
}
