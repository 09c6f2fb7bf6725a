package handler

import (
	"errors"
	"net/http"

	"github.com/Azad-roy/Online-Exam-System/internal/attempt"
	"github.com/Azad-roy/Online-Exam-System/internal/middleware"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/Azad-roy/Online-Exam-System/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttemptHandler drives a live attempt over plain HTTP: answer
// selection, navigation, submission, and silent exit. The WebSocket
// stream mirrors the same operations for clients that hold a socket.
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

type answerRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	Option     int    `json:"option" binding:"gte=0,lte=3"`
}

type positionRequest struct {
	Move  string `json:"move" binding:"required,oneof=next prev jump"`
	Index int    `json:"index" binding:"gte=0"`
}

// State godoc
// GET /api/v1/student/attempt
// Returns the current snapshot of the student's live attempt.
func (h *AttemptHandler) State(c *gin.Context) {
	a, ok := h.live(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attempt": a.Snapshot()})
}

// Answer godoc
// POST /api/v1/student/attempt/answer
// Records an option selection. A later selection for the same question
// overwrites the earlier one.
func (h *AttemptHandler) Answer(c *gin.Context) {
	a, ok := h.live(c)
	if !ok {
		return
	}

	var req answerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := a.SelectAnswer(questionID, req.Option); err != nil {
		response.Fail(c, http.StatusConflict, response.ErrAttemptFinished)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attempt": a.Snapshot()})
}

// Position godoc
// POST /api/v1/student/attempt/position
// Moves the current question pointer. Out-of-range targets clamp to the
// nearest valid index instead of failing.
func (h *AttemptHandler) Position(c *gin.Context) {
	a, ok := h.live(c)
	if !ok {
		return
	}

	var req positionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var index int
	switch req.Move {
	case "next":
		index = a.Advance()
	case "prev":
		index = a.Retreat()
	case "jump":
		index = a.JumpTo(req.Index)
	}

	response.Success(c, http.StatusOK, gin.H{"current_index": index})
}

// Submit godoc
// POST /api/v1/student/attempt/submit
// Finishes the attempt and returns the one-shot result with its
// feedback tier. A duplicate submit returns the original result.
func (h *AttemptHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	a, err := h.attemptService.ForStudent(claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
		return
	}

	res, err := a.Submit()
	if err != nil {
		if errors.Is(err, attempt.ErrAlreadySubmitted) && res != nil {
			response.Success(c, http.StatusOK, gin.H{
				"result":   res,
				"feedback": service.Feedback(res.Percentage),
			})
			return
		}
		response.Fail(c, http.StatusConflict, response.ErrAttemptFinished)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"result":   res,
		"feedback": service.Feedback(res.Percentage),
	})
}

// Exit godoc
// DELETE /api/v1/student/attempt
// Abandons the live attempt without recording anything.
func (h *AttemptHandler) Exit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.attemptService.Discard(claims.UserID); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// live resolves the caller's in-flight attempt or writes the not-found
// error itself.
func (h *AttemptHandler) live(c *gin.Context) (*attempt.Attempt, bool) {
	claims := middleware.GetClaims(c)

	a, err := h.attemptService.ForStudent(claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
		return nil, false
	}
	return a, true
}
