package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultRecord is the persisted outcome of one submitted quiz attempt.
// Records are append-only: one row per submission, never mutated.
type ResultRecord struct {
	ID             uuid.UUID      `json:"id"`
	UserID         int            `json:"user_id"`
	QuizID         uuid.UUID      `json:"quiz_id"`
	QuizTitle      string         `json:"quiz_title"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     int            `json:"percentage"`
	TimeSpent      string         `json:"time_spent"`
	Answers        map[string]int `json:"answers"`
	SubmittedAt    time.Time      `json:"submitted_at"`
}

// Feedback is the tiered message shown alongside a result.
type Feedback struct {
	Message     string `json:"message"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// StudentStats are the dashboard aggregates computed from a student's
// result history.
type StudentStats struct {
	CompletedQuizzes  int `json:"completed_quizzes"`
	AveragePercentage int `json:"average_percentage"`
}
