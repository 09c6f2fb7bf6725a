package handler

import (
	"net/http"
	"strconv"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin panel: account management and
// platform-wide counters.
type AdminHandler struct {
	userService    *service.UserService
	quizService    *service.QuizService
	resultService  *service.ResultService
	attemptService *service.AttemptService
	authService    *service.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	userService *service.UserService,
	quizService *service.QuizService,
	resultService *service.ResultService,
	attemptService *service.AttemptService,
	authService *service.AuthService,
) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		quizService:    quizService,
		resultService:  resultService,
		attemptService: attemptService,
		authService:    authService,
	}
}

// ListUsers godoc
// GET /api/v1/admin/users?page=N&per_page=N&role=student
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "25"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	var roleFilter *model.Role
	if raw := c.Query("role"); raw != "" {
		role := model.Role(raw)
		if !role.Valid() {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		roleFilter = &role
	}

	users, total, err := h.userService.List(c.Request.Context(), roleFilter, perPage, (page-1)*perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	totalPages := (total + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": users}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// DeleteUser godoc
// DELETE /api/v1/admin/users/:user_id
// Removes an account; its session is reset first so a live token cannot
// outlive the row.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.authService.ResetSession(c.Request.Context(), userID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// ResetSession godoc
// POST /api/v1/admin/users/:user_id/reset-session
// Invalidates the user's current login; idempotent.
func (h *AdminHandler) ResetSession(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.authService.ResetSession(c.Request.Context(), userID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Stats godoc
// GET /api/v1/admin/stats
// Platform counters for the admin dashboard.
func (h *AdminHandler) Stats(c *gin.Context) {
	roleCounts, err := h.userService.CountByRole(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	quizCount, err := h.quizService.Count(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	resultCount, err := h.resultService.CountAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users_by_role": roleCounts,
		"quizzes":       quizCount,
		"results":       resultCount,
		"live_attempts": h.attemptService.LiveCount(),
	})
}
