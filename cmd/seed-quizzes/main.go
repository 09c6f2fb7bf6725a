package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/database"
	"github.com/Azad-roy/Online-Exam-System/internal/logger"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/repository"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	quizRepo := repository.NewQuizRepository(pool, questionRepo)

	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(quizRepo, questionRepo, rdb, log)

	fmt.Println("=== Seeding Demo Quizzes ===")

	// Seed teacher account that owns the demo quizzes.
	hash, err := bcrypt.GenerateFromPassword([]byte("teachme123"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	teacher := &model.User{
		Name:         "Demo Teacher",
		Email:        "teacher@examhub.local",
		PasswordHash: string(hash),
		Role:         model.RoleTeacher,
	}
	if err := userService.Create(ctx, teacher); err != nil {
		// Re-running the seeder is fine; reuse the existing account.
		existing, lookupErr := userService.GetByEmail(ctx, teacher.Email)
		if lookupErr != nil {
			log.Fatal().Err(err).Msg("Failed to create teacher")
		}
		teacher = existing
		fmt.Printf("Found existing teacher with ID: %d\n", teacher.ID)
	} else {
		fmt.Printf("Created teacher with ID: %d\n", teacher.ID)
	}

	seeds := []model.CreateQuizRequest{
		{
			Title:           "JavaScript Fundamentals",
			Description:     "Core language behavior every frontend developer should know.",
			DurationMinutes: 10,
			Category:        "Programming",
			Difficulty:      model.DifficultyBeginner,
			Questions: []model.QuestionInput{
				{
					Prompt:        "What is the result of typeof null in JavaScript?",
					Options:       []string{"null", "object", "undefined", "number"},
					CorrectOption: 1,
				},
				{
					Prompt:        "Which method is used to create a new array with filtered elements?",
					Options:       []string{"map()", "filter()", "reduce()", "forEach()"},
					CorrectOption: 1,
				},
				{
					Prompt:        "Which keyword declares a block-scoped variable?",
					Options:       []string{"var", "let", "function", "this"},
					CorrectOption: 1,
				},
			},
		},
		{
			Title:           "SQL Basics",
			Description:     "Selecting, filtering, and joining relational data.",
			DurationMinutes: 15,
			Category:        "Databases",
			Difficulty:      model.DifficultyIntermediate,
			Questions: []model.QuestionInput{
				{
					Prompt:        "Which clause filters rows after aggregation?",
					Options:       []string{"WHERE", "GROUP BY", "HAVING", "ORDER BY"},
					CorrectOption: 2,
				},
				{
					Prompt:        "Which join returns only rows with matches in both tables?",
					Options:       []string{"LEFT JOIN", "INNER JOIN", "FULL JOIN", "CROSS JOIN"},
					CorrectOption: 1,
				},
			},
		},
		{
			Title:           "Networking Essentials",
			Description:     "Protocols and layers of the modern internet.",
			DurationMinutes: 20,
			Category:        "Networking",
			Difficulty:      model.DifficultyAdvanced,
			Questions: []model.QuestionInput{
				{
					Prompt:        "Which protocol does DNS primarily use for queries?",
					Options:       []string{"TCP", "UDP", "ICMP", "SCTP"},
					CorrectOption: 1,
				},
				{
					Prompt:        "What does TLS provide on top of TCP?",
					Options:       []string{"Routing", "Compression", "Encryption", "Fragmentation"},
					CorrectOption: 2,
				},
				{
					Prompt:        "Which status code means Too Many Requests?",
					Options:       []string{"409", "418", "429", "503"},
					CorrectOption: 2,
				},
			},
		},
	}

	successCount := 0
	for i := range seeds {
		quiz, err := quizService.Create(ctx, teacher.ID, &seeds[i])
		if err != nil {
			log.Error().Err(err).Str("title", seeds[i].Title).Msg("Failed to seed quiz")
			continue
		}
		fmt.Printf("Created quiz %q with ID: %s\n", quiz.Title, quiz.ID)
		successCount++
	}

	fmt.Printf("\nDone. Seeded %d/%d quizzes.\n", successCount, len(seeds))
}
