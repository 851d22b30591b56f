package router

import (
	"net/http"
	"time"

	"github.com/edutech/exam-backend/internal/config"
	"github.com/edutech/exam-backend/internal/handler"
	"github.com/edutech/exam-backend/internal/middleware"
	"github.com/edutech/exam-backend/internal/response"
	"github.com/edutech/exam-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Exam *handler.ExamHandler
	User *handler.UserHandler
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
	// otherwise allow all so dev works without extra config. Credentials
	// are required because the session rides in a cookie.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = len(cfg.AllowedOrigins) > 0
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// ─── Auth (public) ─────────────────────────────────────────────────
	api.POST("/login", handlers.Auth.Login)
	api.GET("/login", handlers.Auth.SessionCheck)
	api.POST("/logout", handlers.Auth.Logout)

	// ─── Exams (any authenticated user) ────────────────────────────────
	exams := api.Group("/exams", middleware.RequireSession(authService))
	{
		exams.GET("", handlers.Exam.ListExams)
		exams.GET("/results", handlers.Exam.ListResults)
		exams.GET("/:id", handlers.Exam.GetExam)
		exams.POST("", middleware.RequireAdmin(), handlers.Exam.CreateExam)
		exams.POST("/submit/:id", handlers.Exam.SubmitExam)
	}

	// ─── User management (admin only) ──────────────────────────────────
	users := api.Group("/users", middleware.RequireSession(authService), middleware.RequireAdmin())
	{
		users.GET("", handlers.User.ListStudents)
		users.POST("", handlers.User.CreateStudent)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	return router
}
