package handler

import (
	"errors"
	"net/http"

	"github.com/Azad-roy/Online-Exam-System/internal/middleware"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/Azad-roy/Online-Exam-System/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeacherHandler serves the teacher panel: quiz authoring and the
// teacher's own quiz inventory.
type TeacherHandler struct {
	quizService *service.QuizService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(quizService *service.QuizService) *TeacherHandler {
	return &TeacherHandler{quizService: quizService}
}

// ListMine godoc
// GET /api/v1/teacher/quizzes
// Lists the quizzes authored by the caller.
func (h *TeacherHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizzes, err := h.quizService.ListByAuthor(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Get godoc
// GET /api/v1/teacher/quizzes/:quiz_id
// Returns a quiz with its full question set, correct options included.
// Only the author (or an admin) may see answers.
func (h *TeacherHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quiz, err := h.quizService.GetWithQuestions(c.Request.Context(), quizID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	if claims.Role != model.RoleAdmin && quiz.AuthorID != claims.UserID {
		response.Fail(c, http.StatusForbidden, response.ErrNotQuizAuthor)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Create godoc
// POST /api/v1/teacher/quizzes
// Creates a quiz with its question set. At least one question is
// required.
func (h *TeacherHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// Update godoc
// PUT /api/v1/teacher/quizzes/:quiz_id
// Updates a quiz the caller owns. A provided question list replaces the
// whole set.
func (h *TeacherHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), quizID, claims.UserID, claims.Role, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotQuizAuthor) {
			response.Fail(c, http.StatusForbidden, response.ErrNotQuizAuthor)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Delete godoc
// DELETE /api/v1/teacher/quizzes/:quiz_id
// Deletes a quiz the caller owns; its questions go with it.
func (h *TeacherHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID, claims.UserID, claims.Role); err != nil {
		if errors.Is(err, repository.ErrNotQuizAuthor) {
			response.Fail(c, http.StatusForbidden, response.ErrNotQuizAuthor)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
