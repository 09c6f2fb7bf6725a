package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CatalogService projects quiz definitions into the student catalog and
// resolves question sets for attempt starts (Redis read-through).
type CatalogService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "catalog_service").Logger(),
	}
}

// List returns every quiz projected for display. Popularity and rating
// are synthesized per render; they are presentation-only. An empty store
// yields an empty slice, never an error.
func (s *CatalogService) List(ctx context.Context) ([]model.CatalogEntry, error) {
	quizzes, counts, err := s.quizRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	entries := make([]model.CatalogEntry, 0, len(quizzes))
	for _, q := range quizzes {
		entries = append(entries, model.CatalogEntry{
			Quiz:          q,
			QuestionCount: counts[q.ID],
			Attempts:      rand.Intn(1000) + 500,
			Rating:        fmt.Sprintf("%.1f", 4.5+rand.Float64()*0.5),
		})
	}
	return entries, nil
}

// QuestionsForQuiz resolves a quiz's question set, preferring the Redis
// payload cache and falling back to the database with self-heal.
func (s *CatalogService) QuestionsForQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	payloadKey := config.CacheKey.QuizPayloadKey(quizID.String())

	raw, err := s.rdb.Get(ctx, payloadKey).Result()
	if err == nil {
		var questions []model.Question
		if jsonErr := json.Unmarshal([]byte(raw), &questions); jsonErr == nil {
			return questions, nil
		}
		// Corrupt payload: fall through to the database.
		s.log.Warn().Str("quiz_id", quizID.String()).Msg("Corrupt cached quiz payload")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Quiz payload cache read failed")
	}

	questions, err := s.questionRepo.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	if raw, err := json.Marshal(questions); err == nil {
		if err := s.rdb.Set(ctx, payloadKey, raw, 0).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Quiz payload cache write failed")
		}
	}

	return questions, nil
}

// PrewarmAllCaches loads every quiz's question payload into Redis before
// the server accepts traffic.
func (s *CatalogService) PrewarmAllCaches(ctx context.Context) error {
	quizzes, _, err := s.quizRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list quizzes: %w", err)
	}

	for _, q := range quizzes {
		if _, err := s.QuestionsForQuiz(ctx, q.ID); err != nil {
			s.log.Warn().Err(err).Str("quiz_id", q.ID.String()).Msg("Prewarm failed for quiz")
		}
	}

	s.log.Info().Int("quizzes", len(quizzes)).Msg("Quiz payload caches prewarmed")
	return nil
}
