package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azad-roy/Online-Exam-System/internal/attempt"
	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ResultService records submitted attempts and serves result history.
type ResultService struct {
	resultRepo *repository.ResultRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository, rdb *redis.Client, log zerolog.Logger) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		rdb:        rdb,
		log:        log.With().Str("component", "result_service").Logger(),
	}
}

// Record persists the one-shot result of a submitted attempt. The record
// is enqueued for the background persist worker; if the queue is
// unreachable it falls back to a direct insert. Either way the result is
// a single append-only row, so concurrent submissions never clobber
// each other's history.
func (s *ResultService) Record(ctx context.Context, res *attempt.Result) {
	rec := &model.ResultRecord{
		ID:             res.AttemptID,
		UserID:         res.UserID,
		QuizID:         res.QuizID,
		QuizTitle:      res.QuizTitle,
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		Percentage:     res.Percentage,
		TimeSpent:      res.TimeSpent,
		Answers:        res.Answers,
		SubmittedAt:    res.SubmittedAt,
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		s.log.Error().Err(err).Msg("Result marshal failed")
		return
	}

	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistResultsQueue, raw).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Result enqueue failed, inserting directly")
		if err := s.resultRepo.Insert(ctx, rec); err != nil {
			s.log.Error().Err(err).
				Int("user_id", rec.UserID).
				Str("quiz_id", rec.QuizID.String()).
				Msg("Result insert failed")
		}
	}
}

// History returns a user's results, most recent first, truncated to
// limit when limit > 0.
func (s *ResultService) History(ctx context.Context, userID, limit int) ([]model.ResultRecord, error) {
	records, err := s.resultRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return records, nil
}

// StudentStats returns dashboard aggregates for a student.
func (s *ResultService) StudentStats(ctx context.Context, userID int) (*model.StudentStats, error) {
	return s.resultRepo.StudentAggregates(ctx, userID)
}

// CountAll returns the total number of recorded results.
func (s *ResultService) CountAll(ctx context.Context) (int, error) {
	return s.resultRepo.Count(ctx)
}

// MirrorAnswer writes one answer selection to the attempt's Redis hash,
// best-effort. The mirror only serves observability; the authoritative
// answer map lives in the attempt itself.
func (s *ResultService) MirrorAnswer(attemptID, questionID uuid.UUID, option int) {
	key := config.CacheKey.AttemptAnswersKey(attemptID.String())
	if err := s.rdb.HSet(context.Background(), key, questionID.String(), option).Err(); err != nil {
		s.log.Debug().Err(err).Msg("Answer mirror write failed")
	}
}

// ClearAnswerMirror drops the Redis answer hash for a finished attempt.
func (s *ResultService) ClearAnswerMirror(attemptID uuid.UUID) {
	key := config.CacheKey.AttemptAnswersKey(attemptID.String())
	if err := s.rdb.Del(context.Background(), key).Err(); err != nil {
		s.log.Debug().Err(err).Msg("Answer mirror cleanup failed")
	}
}

// Feedback maps a percentage to its feedback tier. Bands are inclusive
// lower bounds, evaluated top-down, first match wins.
func Feedback(percentage int) model.Feedback {
	switch {
	case percentage >= 90:
		return model.Feedback{
			Message:     "Outstanding! 🎉",
			Description: "You've mastered this material!",
			Severity:    "success",
		}
	case percentage >= 80:
		return model.Feedback{
			Message:     "Excellent Work! 👏",
			Description: "Great understanding of the concepts!",
			Severity:    "success",
		}
	case percentage >= 70:
		return model.Feedback{
			Message:     "Good Job! 💪",
			Description: "Solid performance, keep it up!",
			Severity:    "info",
		}
	case percentage >= 60:
		return model.Feedback{
			Message:     "Not Bad! 📚",
			Description: "Good effort, some room for improvement",
			Severity:    "warning",
		}
	default:
		return model.Feedback{
			Message:     "Keep Practicing! 🎯",
			Description: "Review the material and try again",
			Severity:    "error",
		}
	}
}
