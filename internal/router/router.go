package router

import (
	"net/http"
	"time"

	"github.com/Azad-roy/Online-Exam-System/internal/config"
	"github.com/Azad-roy/Online-Exam-System/internal/handler"
	"github.com/Azad-roy/Online-Exam-System/internal/middleware"
	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
	Attempt *handler.AttemptHandler
	Teacher *handler.TeacherHandler
	Admin   *handler.AdminHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/user")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/signup", handlers.Auth.Signup)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), middleware.CheckSession(authService), handlers.Auth.Me)
	}

	// ─── 2. Student Group (JWT + Session + Role) ───────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSession(authService),
		middleware.RequireRole(model.RoleStudent),
	)
	{
		// Catalog metadata is regenerated per render; a short client
		// cache keeps dashboard navigation from hammering it.
		studentAPI.GET("/quizzes", middleware.CacheControl(30), handlers.Student.Catalog)
		studentAPI.GET("/dashboard", handlers.Student.Dashboard)
		studentAPI.GET("/results", handlers.Student.History)
		studentAPI.POST("/quizzes/:quiz_id/attempt", handlers.Student.StartAttempt)

		studentAPI.GET("/attempt", handlers.Attempt.State)
		studentAPI.POST("/attempt/answer", handlers.Attempt.Answer)
		studentAPI.POST("/attempt/position", handlers.Attempt.Position)
		studentAPI.POST("/attempt/submit", handlers.Attempt.Submit)
		studentAPI.DELETE("/attempt", handlers.Attempt.Exit)
	}

	// ─── 3. WebSocket Group (WS Auth) ──────────────────────────────────
	wsAPI := router.Group("/ws/v1")
	wsAPI.Use(
		middleware.RequireWSAuth(authService),
		middleware.CheckSession(authService),
	)
	{
		wsAPI.GET("/student/attempts/:attempt_id/stream", handlers.WS.AttemptStream)
	}

	// ─── 4. Teacher Group (JWT + Session + Role) ───────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSession(authService),
		middleware.RequireRole(model.RoleTeacher, model.RoleAdmin),
	)
	{
		teacherAPI.GET("/quizzes", handlers.Teacher.ListMine)
		teacherAPI.POST("/quizzes", handlers.Teacher.Create)
		teacherAPI.GET("/quizzes/:quiz_id", handlers.Teacher.Get)
		teacherAPI.PUT("/quizzes/:quiz_id", handlers.Teacher.Update)
		teacherAPI.DELETE("/quizzes/:quiz_id", handlers.Teacher.Delete)
	}

	// ─── 5. Admin Group (JWT + Session + Role) ─────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSession(authService),
		middleware.RequireRole(model.RoleAdmin),
	)
	{
		adminAPI.GET("/users", handlers.Admin.ListUsers)
		adminAPI.DELETE("/users/:user_id", handlers.Admin.DeleteUser)
		adminAPI.POST("/users/:user_id/reset-session", handlers.Admin.ResetSession)
		adminAPI.GET("/stats", handlers.Admin.Stats)
	}

	return router
}
