// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"

	"github.com/revbot-io/revbot/internal/app"
	"github.com/revbot-io/revbot/internal/jobs"
	"github.com/revbot-io/revbot/internal/llm"
	"github.com/revbot-io/revbot/internal/logger"
	"github.com/revbot-io/revbot/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, error) {
	// Load and validate configuration
	cfg, err := provideConfig()
	if err != nil {
		return nil, err
	}

	// Setup logger
	slogLogger := logger.NewLogger(provideLoggerConfig(cfg), provideLogWriter())

	// Model backend
	llmClient, err := llm.New(cfg, slogLogger)
	if err != nil {
		return nil, err
	}

	// Prompt Manager
	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, err
	}

	// Review Job
	reviewJob := jobs.NewReviewJob(cfg, llmClient, promptMgr, slogLogger)

	// Dispatcher
	dispatcher := provideDispatcher(reviewJob, cfg, slogLogger)

	// Server
	srv := server.NewServer(ctx, cfg, dispatcher, slogLogger)

	// App
	application := app.New(ctx, cfg, srv, dispatcher, slogLogger)
	return application, nil
}
