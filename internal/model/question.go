package model

import (
	"github.com/google/uuid"
)

// Question represents a single quiz question with four options.
type Question struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	OrderNum      int       `json:"order_num"`
}

// QuestionForStudent is a question without the correct option, as sent
// to a student taking a quiz.
type QuestionForStudent struct {
	ID       uuid.UUID `json:"id"`
	Prompt   string    `json:"prompt"`
	Options  []string  `json:"options"`
	OrderNum int       `json:"order_num"`
}

// ForStudent strips the correct option from a question.
func (q Question) ForStudent() QuestionForStudent {
	return QuestionForStudent{
		ID:       q.ID,
		Prompt:   q.Prompt,
		Options:  q.Options,
		OrderNum: q.OrderNum,
	}
}
