package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/revbot-io/revbot/internal/config"
	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/github"
	"github.com/revbot-io/revbot/internal/jobs"
	"github.com/revbot-io/revbot/internal/llm"
	"github.com/revbot-io/revbot/internal/logger"
)

// consoleDeps bundles the long-lived dependencies the console needs. A GitHub
// client is created per review instead, because each PR URL may point at a
// different repository.
type consoleDeps struct {
	cfg       *config.Config
	log       *slog.Logger
	llmClient llm.Client
	prompts   *llm.PromptManager
}

func initializeConsoleCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadConfig()
		if err != nil {
			return consoleReadyMsg{err: fmt.Errorf("failed to load config: %w", err)}
		}
		if err := cfg.ValidateForCLI(); err != nil {
			return consoleReadyMsg{err: fmt.Errorf("configuration validation failed: %w", err)}
		}

		// Keep the logger quiet so it does not draw over the UI.
		log := logger.NewLogger(logger.Config{Level: "error", Format: "text"}, os.Stderr)

		llmClient, err := llm.New(cfg, log)
		if err != nil {
			return consoleReadyMsg{err: fmt.Errorf("failed to create LLM client: %w", err)}
		}
		prompts, err := llm.NewPromptManager()
		if err != nil {
			return consoleReadyMsg{err: fmt.Errorf("failed to initialize prompt manager: %w", err)}
		}

		return consoleReadyMsg{deps: &consoleDeps{
			cfg:       cfg,
			log:       log,
			llmClient: llmClient,
			prompts:   prompts,
		}}
	}
}

// reviewPRCmd reviews the pull request behind prURL. With post set, the
// review is published as the tracked PR comment; otherwise the document is
// rendered for the viewport.
func reviewPRCmd(deps *consoleDeps, prURL string, post bool, width int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		owner, repoName, prNumber, err := github.ParsePullRequestURL(prURL)
		if err != nil {
			return errorMsg{fmt.Errorf("invalid PR URL %q: %w", prURL, err)}
		}
		target := fmt.Sprintf("%s/%s#%d", owner, repoName, prNumber)

		gh := github.NewPATClient(ctx, deps.cfg.GitHubToken, owner, repoName, deps.log)
		pr, err := gh.GetPullRequest(ctx, prNumber)
		if err != nil {
			return errorMsg{fmt.Errorf("failed to fetch %s: %w", target, err)}
		}

		trigger := core.ReviewTrigger{
			Kind:     core.TriggerNewReview,
			PRNumber: prNumber,
			Title:    pr.GetTitle(),
			Author:   pr.GetUser().GetLogin(),
		}
		job := jobs.NewReviewJobWithClient(deps.cfg, gh, deps.llmClient, deps.prompts, deps.log)

		if post {
			if err := job.Run(ctx, trigger); err != nil {
				return errorMsg{fmt.Errorf("review of %s failed: %w", target, err)}
			}
			return reviewPostedMsg{target: target}
		}

		doc, err := job.Document(ctx, trigger)
		if err != nil {
			if errors.Is(err, jobs.ErrReviewsDisabled) {
				return errorMsg{fmt.Errorf("reviews are disabled for %s/%s", owner, repoName)}
			}
			return errorMsg{fmt.Errorf("review of %s failed: %w", target, err)}
		}
		return reviewDoneMsg{target: target, document: renderReviewDoc(doc, width)}
	}
}

// renderReviewDoc pretty-prints the Markdown review for the viewport, falling
// back to the raw document when the renderer is unavailable.
func renderReviewDoc(doc string, width int) string {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return doc
	}
	out, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return out
}
