package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/defensoria-df/solar-transcricao/docs"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/handler"
	"github.com/defensoria-df/solar-transcricao/internal/adapter/repository"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/cache"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/external/assemblyai"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/external/n8n"
	httpmw "github.com/defensoria-df/solar-transcricao/internal/infrastructure/http/middleware"
	"github.com/defensoria-df/solar-transcricao/internal/usecase/transcription"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
	"github.com/defensoria-df/solar-transcricao/pkg/logger"
	pkgvalidator "github.com/defensoria-df/solar-transcricao/pkg/validator"
)

// @title        SOLAR Transcrição API
// @version      1.0
// @description  Looks up case videos, transcribes them through n8n and forwards transcripts to SOLAR
// @BasePath     /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	if cfg.IsProduction() {
		e.Use(httpmw.RequestLogger(zlog))
	} else {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
		}))
	}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID, "Cookie"},
		AllowCredentials: true,
	}))

	zlog.Info("initializing dependencies",
		zap.String("session_store", cfg.Session.Store),
		zap.String("transcriber", cfg.Transcriber.Backend),
	)

	store, err := newSessionStore(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize session store", zap.Error(err))
	}
	defer store.Close()

	sessionRepo := repository.NewSessionRepository(store, cfg.Session.TTL)

	n8nClient := n8n.NewClient(cfg.N8N, zlog)
	var transcriber transcription.Transcriber = n8nClient
	if cfg.Transcriber.Backend == config.TranscriberAssemblyAI {
		transcriber = assemblyai.NewTranscriber(
			aai.NewClient(cfg.Transcriber.AssemblyAIAPIKey),
			cfg.Transcriber.LanguageCode,
			cfg.N8N.TranscriptionTimeout,
			zlog,
		)
	}

	svc := transcription.NewService(
		n8nClient,
		transcriber,
		n8nClient,
		sessionRepo,
		transcription.NewLinkBuilder(cfg.Solar.VideoBaseURL),
		zlog,
	)

	workflowHandler := handler.NewWorkflowHandler(svc, cfg.Session, zlog)
	router := handler.NewRouter(cfg, workflowHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		zlog.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("server stopped gracefully")
}

func newSessionStore(cfg *config.Config) (cache.Store, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		return cache.NewMemoryStore(), nil
	}
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisStore(client), nil
}
