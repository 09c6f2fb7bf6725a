package repository

import (
	"context"
	"errors"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotQuizAuthor = errors.New("quiz belongs to another teacher")

// QuizRepository handles quiz definition data access. Quiz and question
// writes share one transaction so a definition is never half-updated.
type QuizRepository struct {
	pool      *pgxpool.Pool
	questions *QuestionRepository
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool, questions *QuestionRepository) *QuizRepository {
	return &QuizRepository{pool: pool, questions: questions}
}

// GetByID retrieves a quiz by ID.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, duration_minutes, category, difficulty, author_id, created_at, updated_at
		 FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &q.Title, &q.Description, &q.DurationMinutes, &q.Category, &q.Difficulty, &q.AuthorID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ListAll retrieves every quiz with its question count, newest first.
func (r *QuizRepository) ListAll(ctx context.Context) ([]model.Quiz, map[uuid.UUID]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT q.id, q.title, q.description, q.duration_minutes, q.category, q.difficulty,
		        q.author_id, q.created_at, q.updated_at, COUNT(qs.id)
		 FROM quizzes q
		 LEFT JOIN questions qs ON qs.quiz_id = q.id
		 GROUP BY q.id
		 ORDER BY q.created_at DESC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var q model.Quiz
		var n int
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.DurationMinutes, &q.Category, &q.Difficulty,
			&q.AuthorID, &q.CreatedAt, &q.UpdatedAt, &n); err != nil {
			return nil, nil, err
		}
		quizzes = append(quizzes, q)
		counts[q.ID] = n
	}
	return quizzes, counts, rows.Err()
}

// ListByAuthor retrieves the quizzes created by one teacher, newest first.
func (r *QuizRepository) ListByAuthor(ctx context.Context, authorID int) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, duration_minutes, category, difficulty, author_id, created_at, updated_at
		 FROM quizzes WHERE author_id = $1 ORDER BY created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.DurationMinutes, &q.Category, &q.Difficulty,
			&q.AuthorID, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Create inserts a quiz and its question set in a single transaction.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz, questions []model.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO quizzes (id, title, description, duration_minutes, category, difficulty, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		q.ID, q.Title, q.Description, q.DurationMinutes, q.Category, q.Difficulty, q.AuthorID,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return err
	}

	if err := r.questions.ReplaceForQuiz(ctx, tx, q.ID, questions); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update modifies a quiz and, when questions is non-nil, replaces its
// question set, all within one transaction.
func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz, questions []model.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE quizzes
		 SET title = $1, description = $2, duration_minutes = $3, category = $4, difficulty = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		q.Title, q.Description, q.DurationMinutes, q.Category, q.Difficulty, q.ID,
	)
	if err != nil {
		return err
	}

	if questions != nil {
		if err := r.questions.ReplaceForQuiz(ctx, tx, q.ID, questions); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a quiz; its questions cascade at the database level.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	return err
}

// Count returns the total number of quizzes.
func (r *QuizRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&n)
	return n, err
}
