package wire

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/revbot-io/revbot/internal/app"
	"github.com/revbot-io/revbot/internal/config"
	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/jobs"
	"github.com/revbot-io/revbot/internal/llm"
	"github.com/revbot-io/revbot/internal/logger"
	"github.com/revbot-io/revbot/internal/server"
)

var AppSet = wire.NewSet(
	app.New,
	server.NewServer,
	logger.NewLogger,
	jobs.NewReviewJob,
	llm.New,
	llm.NewPromptManager,
	provideConfig,
	provideDispatcher,
	provideLoggerConfig,
	provideLogWriter,
)

// provideConfig loads the environment configuration and checks that the
// webhook service has everything it needs to run.
func provideConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideDispatcher(reviewJob core.Job, cfg *config.Config, log *slog.Logger) core.JobDispatcher {
	return jobs.NewDispatcher(reviewJob, cfg.MaxWorkers, log)
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}
}

func provideLogWriter() io.Writer {
	return os.Stdout
}
