// @title QuizQuest API
// @version 1.0
// @description Gamified quiz submission and progression engine.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizquest/internal/adapter"
	"quizquest/internal/cache"
	"quizquest/internal/config"
	"quizquest/internal/database"
	"quizquest/internal/handler"
	"quizquest/internal/logger"
	"quizquest/internal/middleware"
	"quizquest/internal/repository"
	"quizquest/internal/service"
	"quizquest/internal/validation"

	_ "quizquest/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	attemptRepository := repository.NewSQLXQuizAttemptRepository(db)
	dailyProgressRepository := repository.NewSQLXDailyProgressRepository(db)
	achievementRepository := repository.NewSQLXAchievementRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	quizContentService := service.NewQuizContentService(quizRepository, cacheAdapter, cfg.Cache.QuizTTL)
	achievementService := service.NewAchievementService(achievementRepository, userRepository)
	submissionService := service.NewSubmissionService(
		userRepository, attemptRepository, dailyProgressRepository,
		quizContentService, achievementService, txManager,
		validation.NewValidator(),
	)
	userService := service.NewUserService(userRepository, attemptRepository)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	// Handlers
	quizHandler := handler.NewQuizHandler(quizContentService, submissionService)
	userHandler := handler.NewUserHandler(userService, achievementService)
	authHandler := handler.NewAuthHandler(authService, cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMyProfile)
	userGroup.Get("/me/attempts", userHandler.GetMyAttempts)
	userGroup.Get("/me/achievements", userHandler.GetMyAchievements)

	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)
	apiGroup.Post("/quizzes/:id/submit", middleware.Protected(authService), quizHandler.SubmitQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
