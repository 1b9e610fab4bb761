package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/revbot-io/revbot/internal/config"
)

// NewClientForTrigger returns a host client for one review run. With App
// credentials configured the client authenticates as the installation that
// delivered the event; otherwise the personal access token is used.
func NewClientForTrigger(ctx context.Context, cfg *config.Config, installationID int64, logger *slog.Logger) (Client, error) {
	if cfg.GitHubAppID != 0 {
		return CreateInstallationClient(ctx, cfg, installationID, logger)
	}
	return NewPATClient(ctx, cfg.GitHubToken, cfg.GitHubOwner, cfg.GitHubRepo, logger), nil
}

// CreateInstallationClient creates a GitHub client authenticated as a
// specific App installation: the App JWT is exchanged for a short-lived
// installation token.
func CreateInstallationClient(ctx context.Context, cfg *config.Config, installationID int64, logger *slog.Logger) (Client, error) {
	logger.Info("creating GitHub installation client", "installation_id", installationID)

	privateKey, err := os.ReadFile(cfg.GitHubPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key from %s: %w", cfg.GitHubPrivateKeyPath, err)
	}

	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, cfg.GitHubAppID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}
	appClient := github.NewClient(&http.Client{Transport: appTransport})

	token, _, err := appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create installation token for installation ID %d: %w", installationID, err)
	}
	if token.GetToken() == "" {
		return nil, fmt.Errorf("received an empty installation token")
	}
	logger.Info("created installation token", "installation_id", installationID, "expires_at", token.GetExpiresAt())

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.GetToken()})
	tc := oauth2.NewClient(ctx, ts)

	return NewGitHubClient(github.NewClient(tc), cfg.GitHubOwner, cfg.GitHubRepo, logger), nil
}
