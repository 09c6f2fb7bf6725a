package repository

import (
	"context"
	"encoding/json"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles question data access. Options are stored as
// a jsonb array of four strings.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListByQuiz retrieves a quiz's questions in order.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, quiz_id, prompt, options, correct_option, order_num
		 FROM questions WHERE quiz_id = $1 ORDER BY order_num`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		var rawOptions []byte
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Prompt, &rawOptions, &q.CorrectOption, &q.OrderNum); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawOptions, &q.Options); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ReplaceForQuiz deletes and re-inserts the question set for a quiz
// inside the caller's transaction.
func (r *QuestionRepository) ReplaceForQuiz(ctx context.Context, tx pgx.Tx, quizID uuid.UUID, questions []model.Question) error {
	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE quiz_id = $1`, quizID); err != nil {
		return err
	}

	for _, q := range questions {
		rawOptions, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO questions (id, quiz_id, prompt, options, correct_option, order_num)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			q.ID, quizID, q.Prompt, rawOptions, q.CorrectOption, q.OrderNum,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
