package service

import (
	"context"
	"fmt"

	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// QuizService handles teacher-side quiz authoring.
type QuizService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "quiz_service").Logger(),
	}
}

// GetByID retrieves a quiz definition.
func (s *QuizService) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

// GetWithQuestions retrieves a quiz together with its full question set
// (correct options included — teacher view only).
func (s *QuizService) GetWithQuestions(ctx context.Context, id uuid.UUID) (*model.QuizWithQuestions, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.QuizWithQuestions{Quiz: *quiz, Questions: questions}, nil
}

// Count returns the total number of quizzes.
func (s *QuizService) Count(ctx context.Context) (int, error) {
	return s.quizRepo.Count(ctx)
}

// ListByAuthor retrieves a teacher's own quizzes.
func (s *QuizService) ListByAuthor(ctx context.Context, authorID int) ([]model.Quiz, error) {
	return s.quizRepo.ListByAuthor(ctx, authorID)
}

// Create stores a new quiz with its question set. The request is
// validated upstream to carry at least one question, so scoring an
// attempt of this quiz can never divide by zero.
func (s *QuizService) Create(ctx context.Context, authorID int, req *model.CreateQuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Difficulty:      req.Difficulty,
		AuthorID:        authorID,
	}

	questions := buildQuestions(quiz.ID, req.Questions)
	if err := s.quizRepo.Create(ctx, quiz, questions); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.refreshCache(ctx, quiz.ID)
	return quiz, nil
}

// Update modifies a quiz the teacher owns. Admins may edit any quiz.
func (s *QuizService) Update(ctx context.Context, quizID uuid.UUID, actorID int, actorRole model.Role, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if actorRole != model.RoleAdmin && quiz.AuthorID != actorID {
		return nil, repository.ErrNotQuizAuthor
	}

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.DurationMinutes > 0 {
		quiz.DurationMinutes = req.DurationMinutes
	}
	if req.Category != "" {
		quiz.Category = req.Category
	}
	if req.Difficulty != "" {
		quiz.Difficulty = req.Difficulty
	}

	var questions []model.Question
	if req.Questions != nil {
		questions = buildQuestions(quiz.ID, req.Questions)
	}

	if err := s.quizRepo.Update(ctx, quiz, questions); err != nil {
		return nil, fmt.Errorf("update quiz: %w", err)
	}

	s.refreshCache(ctx, quiz.ID)
	return quiz, nil
}

// Delete removes a quiz the teacher owns. Admins may delete any quiz.
func (s *QuizService) Delete(ctx context.Context, quizID uuid.UUID, actorID int, actorRole model.Role) error {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return err
	}
	if actorRole != model.RoleAdmin && quiz.AuthorID != actorID {
		return repository.ErrNotQuizAuthor
	}

	if err := s.quizRepo.Delete(ctx, quizID); err != nil {
		return err
	}

	if err := s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(quizID.String())).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", quizID.String()).Msg("Cache invalidation failed")
	}
	return nil
}

// refreshCache drops the cached question payload so the next attempt
// start reloads it from the database.
func (s *QuizService) refreshCache(ctx context.Context, quizID uuid.UUID) {
	if err := s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(quizID.String())).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", quizID.String()).Msg("Cache refresh failed")
	}
}

func buildQuestions(quizID uuid.UUID, inputs []model.QuestionInput) []model.Question {
	questions := make([]model.Question, len(inputs))
	for i, in := range inputs {
		questions[i] = model.Question{
			ID:            uuid.New(),
			QuizID:        quizID,
			Prompt:        in.Prompt,
			Options:       in.Options,
			CorrectOption: in.CorrectOption,
			OrderNum:      i + 1,
		}
	}
	return questions
}
