// @title CourseForge API
// @version 1.0
// @description AI assisted course generation and adaptive regeneration API.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
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

	"courseforge/internal/adapter"
	"courseforge/internal/adapter/contentgen"
	"courseforge/internal/adapter/video"
	"courseforge/internal/cache"
	"courseforge/internal/config"
	"courseforge/internal/database"
	"courseforge/internal/handler"
	"courseforge/internal/logger"
	"courseforge/internal/middleware"
	"courseforge/internal/repository"
	"courseforge/internal/service"

	_ "courseforge/cmd/api/docs"

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

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
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

	ctx := context.Background()

	// Generation providers
	llm, err := contentgen.NewLLMClient(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized", zap.String("provider", cfg.LLM.Provider))

	proposer := contentgen.NewLLMChapterProposer(llm)
	outliner := contentgen.NewLLMCourseOutliner(llm)
	explainer := contentgen.NewLLMContentExplainer(llm)
	quizGenerator := contentgen.NewLLMQuizGenerator(llm)

	videoResolver, err := video.NewYouTubeResolver(ctx, cfg.YouTube.APIKey)
	if err != nil {
		appLogger.Fatal("Failed to create video resolver", zap.Error(err))
	}
	transcriptFetcher, err := video.NewHTTPTranscriptFetcher(cfg.Transcript.BaseURL, cfg.Transcript.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create transcript fetcher", zap.Error(err))
	}

	// Persistence
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	courseRepository := repository.NewCourseDatabaseAdapter(db)
	quizResultRepository := repository.NewQuizResultDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Services
	courseService := service.NewCourseService(
		courseRepository, txManager, outliner,
		videoResolver, transcriptFetcher, explainer, quizGenerator, cfg)
	quizResultService := service.NewQuizResultService(
		courseRepository, quizResultRepository, txManager, cacheAdapter)
	analysisService := service.NewAnalysisService(
		courseRepository, quizResultRepository, cacheAdapter, cfg)
	regenerationService := service.NewRegenerationService(
		courseRepository, quizResultRepository, txManager, proposer,
		videoResolver, transcriptFetcher, explainer, quizGenerator, cacheAdapter, cfg)

	// Handlers
	courseHandler := handler.NewCourseHandler(courseService)
	unitHandler := handler.NewUnitHandler(regenerationService, analysisService, quizResultService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	protected := middleware.Protected(cfg.Auth.JWTSecret)
	apiGroup := app.Group("/api")

	courseGroup := apiGroup.Group("/courses", protected)
	courseGroup.Post("/", courseHandler.CreateCourse)
	courseGroup.Get("/:courseId", courseHandler.GetCourse)

	chapterGroup := apiGroup.Group("/chapters", protected)
	chapterGroup.Get("/:chapterId/content", courseHandler.GetChapterContent)
	chapterGroup.Post("/:chapterId/populate", courseHandler.PopulateChapter)

	unitGroup := apiGroup.Group("/units", protected)
	unitGroup.Post("/:unitId/regenerate", unitHandler.RegenerateUnit)
	unitGroup.Get("/:unitId/analysis", unitHandler.GetUnitAnalysis)

	apiGroup.Post("/quiz-results", protected, unitHandler.SubmitQuizResults)

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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
