package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/revbot-io/revbot/internal/config"
	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/github"
	"github.com/revbot-io/revbot/internal/jobs"
	"github.com/revbot-io/revbot/internal/llm"
	"github.com/revbot-io/revbot/internal/logger"
)

var (
	verbose    bool
	postReview bool
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url]",
	Short: "Review a GitHub Pull Request from the terminal",
	Long: `Review a GitHub Pull Request from the terminal.

The review command fetches the PR's changed files, asks the configured model
to review each one, and prints the combined Markdown review. With --post the
review is published to the PR as the agent's tracked comment instead.

Examples:
  revbot-cli review https://github.com/owner/repo/pull/123
  revbot-cli review --post https://github.com/owner/repo/pull/123
  revbot-cli review --verbose https://github.com/owner/repo/pull/123`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	reviewCmd.Flags().BoolVar(&postReview, "post", false, "Publish the review to the pull request instead of printing it")
	rootCmd.AddCommand(reviewCmd)
}

// stepTimer tracks timing for verbose output
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{
		stepNum:    0,
		totalSteps: totalSteps,
		verbose:    verbose,
	}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\n🔧 Step %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) done(details ...string) {
	if t.verbose {
		elapsed := time.Since(t.start).Round(time.Millisecond)
		successColor.Printf("   ✓ Done (%s)\n", elapsed)
		for _, d := range details {
			dimColor.Printf("   └── %s\n", d)
		}
	}
}

func (t *stepTimer) info(format string, args ...any) {
	if t.verbose {
		dimColor.Printf("   ├── "+format+"\n", args...)
	}
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	prURL := args[0]

	totalSteps := 4
	if postReview {
		totalSteps = 3
	}
	timer := newStepTimer(totalSteps, verbose)
	overallStart := time.Now()

	titleColor.Println("🚀 revbot - PR Review")
	dimColor.Printf("   Target: %s\n\n", prURL)

	// 1. Configuration
	timer.step("Loading configuration")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\n\nTip: Check that your .env file is valid", err)
	}
	if token := viper.GetString("GITHUB_TOKEN"); token != "" {
		cfg.GitHubToken = token
	}
	if err := cfg.ValidateForCLI(); err != nil {
		return fmt.Errorf("%w\n\nTip: Pass --github-token or complete your .env file", err)
	}

	logLevel := "warn"
	if verbose {
		logLevel = "debug"
	}
	log := logger.NewLogger(logger.Config{Level: logLevel, Format: "text"}, os.Stderr)
	timer.done()

	// 2. Fetch PR metadata
	timer.step("Fetching PR metadata")
	owner, repoName, prNumber, err := github.ParsePullRequestURL(prURL)
	if err != nil {
		return fmt.Errorf("invalid PR URL: %w\n\nExpected format: https://github.com/owner/repo/pull/123", err)
	}

	ghClient := github.NewPATClient(ctx, cfg.GitHubToken, owner, repoName, log)
	pr, err := ghClient.GetPullRequest(ctx, prNumber)
	if err != nil {
		return fmt.Errorf("failed to fetch PR: %w\n\nTip: Check that the PR exists and your token has access", err)
	}
	timer.info("PR #%d: %s", pr.GetNumber(), pr.GetTitle())
	timer.info("Author: %s", pr.GetUser().GetLogin())
	timer.done()

	trigger := core.ReviewTrigger{
		Kind:     core.TriggerNewReview,
		PRNumber: prNumber,
		Title:    pr.GetTitle(),
		Author:   pr.GetUser().GetLogin(),
	}

	llmClient, err := llm.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return fmt.Errorf("failed to initialize prompt manager: %w", err)
	}
	job := jobs.NewReviewJobWithClient(cfg, ghClient, llmClient, promptMgr, log)

	if postReview {
		// 3. Publish through the same path the webhook service takes.
		timer.step("Reviewing and publishing")
		if err := job.Run(ctx, trigger); err != nil {
			return fmt.Errorf("review failed: %w", err)
		}
		timer.done()

		successColor.Printf("\n✅ Review posted to %s\n", prURL)
		if verbose {
			dimColor.Printf("\n⏱️  Total time: %s\n", time.Since(overallStart).Round(time.Millisecond))
		}
		return nil
	}

	// 3. Review changed files
	timer.step("Reviewing changed files")
	doc, err := job.Document(ctx, trigger)
	if err != nil {
		if errors.Is(err, jobs.ErrReviewsDisabled) {
			warnColor.Println("Reviews are disabled for this repository")
			return nil
		}
		return fmt.Errorf("review failed: %w\n\nTip: Check that the LLM endpoint is reachable", err)
	}
	timer.done()

	// 4. Render for the terminal
	timer.step("Rendering review")
	rendered, err := renderMarkdown(doc)
	if err != nil {
		// Fall back to the raw document when the terminal renderer fails.
		rendered = doc
	}
	timer.done()

	if verbose {
		dimColor.Printf("\n⏱️  Total time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}
	fmt.Println(rendered)
	return nil
}

func renderMarkdown(doc string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}
