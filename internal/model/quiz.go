package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty enumerates the advertised difficulty of a quiz.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Quiz represents a teacher-authored quiz definition.
type Quiz struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	Category        string     `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	AuthorID        int        `json:"author_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// QuizWithQuestions bundles a quiz with its ordered question set.
type QuizWithQuestions struct {
	Quiz
	Questions []Question `json:"questions"`
}

// CatalogEntry is a quiz as projected into the student catalog.
// Attempts and Rating are synthesized display metadata, randomized per
// render; they carry no meaning beyond presentation.
type CatalogEntry struct {
	Quiz
	QuestionCount int    `json:"question_count"`
	Attempts      int    `json:"attempts"`
	Rating        string `json:"rating"`
}

// QuestionInput is one question in a quiz create/update payload.
type QuestionInput struct {
	Prompt        string   `json:"prompt" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,len=4,dive,required,max=500"`
	CorrectOption int      `json:"correct_option" binding:"gte=0,lte=3"`
}

// CreateQuizRequest is the payload for creating a quiz. A quiz must have
// at least one question; empty question sets are rejected at authoring
// time so attempt scoring never divides by zero.
type CreateQuizRequest struct {
	Title           string          `json:"title" binding:"required,min=3,max=255"`
	Description     string          `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,min=1,max=480"`
	Category        string          `json:"category" binding:"required,min=2,max=100"`
	Difficulty      Difficulty      `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Questions       []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuizRequest is the payload for updating an existing quiz.
// A non-nil Questions slice replaces the whole question set.
type UpdateQuizRequest struct {
	Title           string          `json:"title" binding:"omitempty,min=3,max=255"`
	Description     *string         `json:"description" binding:"omitempty,max=2000"`
	DurationMinutes int             `json:"duration_minutes" binding:"omitempty,min=1,max=480"`
	Category        string          `json:"category" binding:"omitempty,min=2,max=100"`
	Difficulty      Difficulty      `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Questions       []QuestionInput `json:"questions" binding:"omitempty,min=1,dive"`
}
