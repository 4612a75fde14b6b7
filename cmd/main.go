package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/database"
	"github.com/achyut02/Ai-Placement-Tracker/internal/controller"
	authctrl "github.com/achyut02/Ai-Placement-Tracker/internal/controller/auth"
	interviewctrl "github.com/achyut02/Ai-Placement-Tracker/internal/controller/interview"
	"github.com/achyut02/Ai-Placement-Tracker/internal/logger"
	"github.com/achyut02/Ai-Placement-Tracker/internal/middleware"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/repository"
	"github.com/achyut02/Ai-Placement-Tracker/internal/service"
)

// @title AI Placement Tracker API
// @version 1.0
// @description Mock-interview backend: AI-generated questions, AI-scored answers, per-user progress tracking.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB (nil in degraded mode)
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewInterviewAIService,
			service.NewAuthService,
			service.NewInterviewService,
			service.NewStatsService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			interviewctrl.NewInterviewController,
			controller.NewHealthController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	r.Use(limiter.Handler())

	// Swagger UI (docs generated with `swag init`)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	healthCtrl *controller.HealthController,
	authCtrl *authctrl.AuthController,
	interviewCtrl *interviewctrl.InterviewController,
) {
	router.GET("/health", healthCtrl.Check)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	interviews := api.Group("/interviews")
	interviews.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		interviews.GET("/topics", interviewCtrl.GetTopics)
		interviews.POST("/start", interviewCtrl.Start)
		interviews.POST("/question", interviewCtrl.GenerateQuestion)
		interviews.POST("/answer", interviewCtrl.SubmitAnswer)
		interviews.GET("/progress", interviewCtrl.GetProgress)
		interviews.GET("/history", interviewCtrl.GetHistory)
		interviews.GET("/:id", interviewCtrl.GetInterview)
		interviews.DELETE("/:id", interviewCtrl.DeleteInterview)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Placement Tracker API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	if db == nil {
		log.Warn().Msg("Skipping migrations: database unavailable")
		return nil
	}
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&model.User{},
		&model.Interview{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
