// @title Study Buddy API
// @version 1.0
// @description Explains study texts, generates quizzes from the explanations and tracks study progress.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_WORKSPACE_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"study-buddy/internal/adapter/export"
	"study-buddy/internal/adapter/llm"
	"study-buddy/internal/adapter/store"
	"study-buddy/internal/cache"
	"study-buddy/internal/config"
	"study-buddy/internal/domain"
	"study-buddy/internal/handler"
	"study-buddy/internal/logger"
	"study-buddy/internal/middleware"
	"study-buddy/internal/service"

	_ "study-buddy/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func newWorkspaceStore(cfg *config.Config) (domain.WorkspaceStore, func(), error) {
	if cfg.Store.Driver != config.StoreRedis {
		return store.NewMemoryWorkspaceStore(cfg.Store.WorkspaceTTL), func() {}, nil
	}

	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logger.Get().Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	return store.NewRedisWorkspaceStore(redisClient, cfg.Store.WorkspaceTTL), closeFn, nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	generator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}
	agents := service.NewLLMGateway(generator, cfg.LLM.Timeout)
	appLogger.Info("LLM gateway initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.Duration("timeout", cfg.LLM.Timeout))

	workspaceStore, closeStore, err := newWorkspaceStore(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize workspace store", zap.Error(err))
	}
	defer closeStore()
	appLogger.Info("Workspace store initialized", zap.String("driver", cfg.Store.Driver))

	// Initialize services
	accessor := service.NewWorkspaceAccessor(workspaceStore)
	workspaceService, err := service.NewWorkspaceService(workspaceStore, cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create WorkspaceService", zap.Error(err))
	}
	studyService := service.NewStudyService(agents, accessor)
	historyService := service.NewHistoryService(accessor)
	progressService := service.NewProgressService(accessor)
	exportService := service.NewExportService(accessor, export.NewPDFRenderer(export.DefaultPDFConfig()), cfg.Export.OriginalTextLimit)

	handlers := handler.Handlers{
		Workspace: handler.NewWorkspaceHandler(workspaceService),
		Study:     handler.NewStudyHandler(studyService, exportService),
		History:   handler.NewHistoryHandler(historyService),
		Progress:  handler.NewProgressHandler(progressService),
		Normalize: handler.NewNormalizeHandler(),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", ExposeHeaders: "Content-Disposition", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app.Group("/api"), handlers, workspaceService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
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
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
