package repository

import (
	"context"
	"encoding/json"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository handles persisted quiz results. The table is
// append-only: one row per submitted attempt, never updated.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Insert appends a single result record.
func (r *ResultRepository) Insert(ctx context.Context, rec *model.ResultRecord) error {
	rawAnswers, err := json.Marshal(rec.Answers)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO results (id, user_id, quiz_id, quiz_title, score, total_questions, percentage, time_spent, answers, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.UserID, rec.QuizID, rec.QuizTitle, rec.Score, rec.TotalQuestions,
		rec.Percentage, rec.TimeSpent, rawAnswers, rec.SubmittedAt,
	)
	return err
}

// InsertBatch appends many result records in one round trip.
func (r *ResultRepository) InsertBatch(ctx context.Context, recs []*model.ResultRecord) error {
	batch := &pgx.Batch{}
	for _, rec := range recs {
		rawAnswers, err := json.Marshal(rec.Answers)
		if err != nil {
			return err
		}
		batch.Queue(
			`INSERT INTO results (id, user_id, quiz_id, quiz_title, score, total_questions, percentage, time_spent, answers, submitted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			rec.ID, rec.UserID, rec.QuizID, rec.QuizTitle, rec.Score, rec.TotalQuestions,
			rec.Percentage, rec.TimeSpent, rawAnswers, rec.SubmittedAt,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range recs {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// ListByUser retrieves a user's results, most recent first, truncated to
// limit when limit > 0.
func (r *ResultRepository) ListByUser(ctx context.Context, userID, limit int) ([]model.ResultRecord, error) {
	query := `SELECT id, user_id, quiz_id, quiz_title, score, total_questions, percentage, time_spent, answers, submitted_at
	          FROM results WHERE user_id = $1 ORDER BY submitted_at DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ResultRecord
	for rows.Next() {
		var rec model.ResultRecord
		var rawAnswers []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.QuizID, &rec.QuizTitle, &rec.Score, &rec.TotalQuestions,
			&rec.Percentage, &rec.TimeSpent, &rawAnswers, &rec.SubmittedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawAnswers, &rec.Answers); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// StudentAggregates returns a student's dashboard aggregates.
func (r *ResultRepository) StudentAggregates(ctx context.Context, userID int) (*model.StudentStats, error) {
	stats := &model.StudentStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(ROUND(AVG(percentage)), 0)
		 FROM results WHERE user_id = $1`, userID,
	).Scan(&stats.CompletedQuizzes, &stats.AveragePercentage)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Count returns the total number of result records.
func (r *ResultRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM results`).Scan(&n)
	return n, err
}
