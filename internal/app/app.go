// Package app orchestrates the main components of the revbot application.
// Construction of the individual components lives in the wire package.
package app

import (
	"context"
	"log/slog"

	"github.com/revbot-io/revbot/internal/config"
	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/server"
)

// App holds the main application components.
type App struct {
	ctx        context.Context
	cfg        *config.Config
	server     *server.Server
	logger     *slog.Logger
	dispatcher core.JobDispatcher
}

// New assembles the application from its constructed components.
func New(ctx context.Context, cfg *config.Config, srv *server.Server, dispatcher core.JobDispatcher, logger *slog.Logger) *App {
	logger.Info("revbot application initialized",
		"llm_provider", cfg.LLMProvider,
		"llm_model", cfg.LLMModelName,
		"trigger_phrase", cfg.TriggerPhrase,
		"max_workers", cfg.MaxWorkers)

	return &App{
		ctx:        ctx,
		cfg:        cfg,
		server:     srv,
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.logger.Info("starting revbot",
		"server_port", a.cfg.ServerPort,
		"max_workers", a.cfg.MaxWorkers)

	err := a.server.Start()
	if err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}

	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down revbot services")

	// Stop the HTTP server first to prevent new incoming requests.
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
		// Continue to stop other components even if the server failed.
	}

	// Stop the job dispatcher, allowing in-flight jobs to finish.
	a.dispatcher.Stop()

	if serverErr != nil {
		a.logger.Error("revbot stopped with errors", "error", serverErr)
		return serverErr
	}

	a.logger.Info("revbot stopped successfully")
	return nil
}
