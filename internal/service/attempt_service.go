package service

import (
	"context"

	"github.com/Azad-roy/Online-Exam-System/internal/attempt"
	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AttemptService orchestrates live quiz attempts: it resolves the
// question set, registers the attempt with the in-memory manager, and
// wires the submission pipeline (record result, release the student's
// slot, drop the Redis mirrors).
type AttemptService struct {
	manager        *attempt.Manager
	quizService    *QuizService
	catalogService *CatalogService
	resultService  *ResultService
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(
	manager *attempt.Manager,
	quizService *QuizService,
	catalogService *CatalogService,
	resultService *ResultService,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttemptService {
	return &AttemptService{
		manager:        manager,
		quizService:    quizService,
		catalogService: catalogService,
		resultService:  resultService,
		rdb:            rdb,
		log:            log.With().Str("component", "attempt_service").Logger(),
	}
}

// Start creates and registers a live attempt for the student. A student
// with an attempt already in flight gets attempt.ErrInProgress; the
// existing attempt stays untouched.
func (s *AttemptService) Start(ctx context.Context, studentID int, quizID uuid.UUID) (*attempt.Attempt, error) {
	quiz, err := s.quizService.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.catalogService.QuestionsForQuiz(ctx, quizID)
	if err != nil {
		// The attempt core substitutes the fallback set for an empty
		// slice, so a cache+db miss degrades instead of blocking.
		s.log.Warn().Err(err).Str("quiz_id", quizID.String()).Msg("Question resolution failed, using fallback set")
		questions = nil
	}

	a := attempt.New(*quiz, questions, studentID, s.onSubmit, s.resultService.MirrorAnswer)
	if err := s.manager.Register(a); err != nil {
		return nil, err
	}

	s.mirrorActive(studentID, a.ID())
	return a, nil
}

// Get returns a live attempt if it belongs to the given student.
func (s *AttemptService) Get(attemptID uuid.UUID, studentID int) (*attempt.Attempt, error) {
	a, err := s.manager.Get(attemptID)
	if err != nil {
		return nil, err
	}
	if a.StudentID() != studentID {
		return nil, attempt.ErrNotFound
	}
	return a, nil
}

// ForStudent returns the student's live attempt, if any.
func (s *AttemptService) ForStudent(studentID int) (*attempt.Attempt, error) {
	return s.manager.GetForStudent(studentID)
}

// Discard silently abandons the student's live attempt. Nothing is
// recorded; the slot is released immediately.
func (s *AttemptService) Discard(studentID int) error {
	a, err := s.manager.GetForStudent(studentID)
	if err != nil {
		return err
	}
	if err := a.Discard(); err != nil {
		return err
	}

	s.manager.Remove(a.ID())
	s.resultService.ClearAnswerMirror(a.ID())
	s.clearActive(studentID)
	return nil
}

// onSubmit runs once per attempt, on manual submit and timer expiry
// alike. It is invoked outside the attempt lock.
func (s *AttemptService) onSubmit(res *attempt.Result) {
	ctx := context.Background()
	s.resultService.Record(ctx, res)
	s.manager.Remove(res.AttemptID)
	s.resultService.ClearAnswerMirror(res.AttemptID)
	s.clearActive(res.UserID)

	s.log.Info().
		Int("user_id", res.UserID).
		Str("quiz_id", res.QuizID.String()).
		Int("percentage", res.Percentage).
		Bool("auto", res.AutoSubmitted).
		Msg("Attempt submitted")
}

// LiveCount returns the number of attempts currently in flight.
func (s *AttemptService) LiveCount() int {
	return s.manager.Count()
}

// FeedbackFor returns the feedback tier for a finished attempt.
func (s *AttemptService) FeedbackFor(res *attempt.Result) model.Feedback {
	return Feedback(res.Percentage)
}

func (s *AttemptService) mirrorActive(studentID int, attemptID uuid.UUID) {
	key := config.CacheKey.StudentActiveAttemptKey(studentID)
	if err := s.rdb.Set(context.Background(), key, attemptID.String(), 0).Err(); err != nil {
		s.log.Debug().Err(err).Msg("Active attempt mirror write failed")
	}
}

func (s *AttemptService) clearActive(studentID int) {
	key := config.CacheKey.StudentActiveAttemptKey(studentID)
	if err := s.rdb.Del(context.Background(), key).Err(); err != nil {
		s.log.Debug().Err(err).Msg("Active attempt mirror cleanup failed")
	}
}
