package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/studyforge/planner-api/internal/config"
	"github.com/studyforge/planner-api/internal/planner"
	"github.com/studyforge/planner-api/internal/platform/gemini"
	"github.com/studyforge/planner-api/internal/platform/sheets"
)

// application holds the wired dependencies for the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	planner *planner.Planner
}

// newApplication builds the dependency graph: the spreadsheet gateway,
// the Gemini generator, and the planner on top of both.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gateway, err := sheets.NewClient(sheets.Config{
		WebAppURL: cfg.Remote.WebAppURL,
		Timeout:   time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	generator, err := gemini.NewGenerator(ctx, gemini.Config{
		APIKey: cfg.LLM.GeminiAPIKey,
		Model:  cfg.LLM.ModelName,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini generator: %w", err)
	}

	p, err := planner.New(gateway, generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  logger,
		planner: p,
	}, nil
}
