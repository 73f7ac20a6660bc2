package main

import (
	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/defensoria-df/solar-transcricao/internal/adapter/repository"
	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/cache"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/external/assemblyai"
	"github.com/defensoria-df/solar-transcricao/internal/infrastructure/external/n8n"
	"github.com/defensoria-df/solar-transcricao/internal/usecase/transcription"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
	"github.com/defensoria-df/solar-transcricao/pkg/logger"
)

// app is the wiring shared by every subcommand. Each invocation is its own session.
type app struct {
	svc       transcription.Service
	sessionID string
	close     func()
}

func newApp(verbose bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	zlog, err := logger.New("development", level)
	if err != nil {
		return nil, err
	}

	store := cache.NewMemoryStore()
	client := n8n.NewClient(cfg.N8N, zlog)

	var transcriber transcription.Transcriber = client
	if cfg.Transcriber.Backend == config.TranscriberAssemblyAI {
		transcriber = assemblyai.NewTranscriber(
			aai.NewClient(cfg.Transcriber.AssemblyAIAPIKey),
			cfg.Transcriber.LanguageCode,
			cfg.N8N.TranscriptionTimeout,
			zlog,
		)
	}

	svc := transcription.NewService(
		client,
		transcriber,
		client,
		repository.NewSessionRepository(store, cfg.Session.TTL),
		transcription.NewLinkBuilder(cfg.Solar.VideoBaseURL),
		zlog,
	)

	return &app{
		svc:       svc,
		sessionID: entities.NewSessionID(),
		close: func() {
			store.Close()
			_ = zlog.Sync()
		},
	}, nil
}

func (a *app) Close() {
	if a.close != nil {
		a.close()
	}
}
