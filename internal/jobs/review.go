package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/revbot-io/revbot/internal/config"
	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/github"
	"github.com/revbot-io/revbot/internal/llm"
)

// GitHubClientFactory builds a GitHub client for one review run. The
// installation id selects the App installation when App auth is configured
// and is ignored for token auth.
type GitHubClientFactory func(ctx context.Context, installationID int64) (github.Client, error)

// ReviewJob reviews every changed file of a pull request with the model and
// publishes the combined result into a single tracked PR comment.
type ReviewJob struct {
	cfg       *config.Config
	llmClient llm.Client
	prompts   *llm.PromptManager
	logger    *slog.Logger
	ghFactory GitHubClientFactory
}

// ErrReviewsDisabled reports that the target repository opted out of reviews
// through its settings file.
var ErrReviewsDisabled = errors.New("reviews are disabled for this repository")

// NewReviewJob creates a new ReviewJob with its dependencies. Each run builds
// its own GitHub client from the trigger's installation id.
func NewReviewJob(cfg *config.Config, llmClient llm.Client, prompts *llm.PromptManager, logger *slog.Logger) core.Job {
	j := newReviewJob(cfg, llmClient, prompts, logger)
	j.ghFactory = func(ctx context.Context, installationID int64) (github.Client, error) {
		return github.NewClientForTrigger(ctx, cfg, installationID, logger)
	}
	return j
}

// NewReviewJobWithClient builds a ReviewJob bound to one prebuilt GitHub
// client, the path the CLI takes with personal access token auth.
func NewReviewJobWithClient(cfg *config.Config, gh github.Client, llmClient llm.Client, prompts *llm.PromptManager, logger *slog.Logger) *ReviewJob {
	if gh == nil {
		panic("GitHub client cannot be nil")
	}
	j := newReviewJob(cfg, llmClient, prompts, logger)
	j.ghFactory = func(context.Context, int64) (github.Client, error) {
		return gh, nil
	}
	return j
}

func newReviewJob(cfg *config.Config, llmClient llm.Client, prompts *llm.PromptManager, logger *slog.Logger) *ReviewJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if llmClient == nil {
		panic("LLM client cannot be nil")
	}
	if prompts == nil {
		panic("prompt manager cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{
		cfg:       cfg,
		llmClient: llmClient,
		prompts:   prompts,
		logger:    logger,
	}
}

// Run executes one review for the given trigger.
func (j *ReviewJob) Run(ctx context.Context, trigger core.ReviewTrigger) error {
	if err := validateTrigger(trigger); err != nil {
		j.logger.Error("Input validation failed", "error", err)
		return fmt.Errorf("input validation failed: %w", err)
	}

	j.logger.Info("Starting review job", "pr", trigger.PRNumber, "kind", trigger.Kind)

	ghClient, err := j.ghFactory(ctx, trigger.InstallationID)
	if err != nil {
		j.logger.Error("Failed to create GitHub client", "error", err)
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repoCfg := j.loadRepoConfig(ctx, ghClient)
	if !repoCfg.IsEnabled() {
		j.logger.Info("Reviews are disabled for this repository, skipping", "pr", trigger.PRNumber)
		return nil
	}

	systemPrompt, err := j.prompts.Render(llm.ReviewSystemPrompt, llm.SystemPromptData{
		Title:              trigger.Title,
		CustomInstructions: repoCfg.CustomInstructions,
	})
	if err != nil {
		j.logger.Error("Failed to render system prompt", "error", err)
		return fmt.Errorf("failed to render system prompt: %w", err)
	}

	commentID, found, err := j.locateTargetComment(ctx, ghClient, trigger)
	if err != nil {
		return err
	}
	if !found {
		// A synchronize on a PR the agent never greeted. Nothing to update,
		// and creating a comment here would break the one-comment contract.
		j.logger.Info("No tracked review comment found, skipping", "pr", trigger.PRNumber)
		return nil
	}

	doc := j.buildReviewDoc(ctx, ghClient, trigger, repoCfg.ExcludeExts, systemPrompt)

	if err := ghClient.UpdateIssueComment(ctx, commentID, doc); err != nil {
		j.logger.Error("Failed to publish review", "comment_id", commentID, "error", err)
		return nil
	}

	j.logger.Info("Review job completed", "pr", trigger.PRNumber, "comment_id", commentID)
	return nil
}

// Document runs the review pipeline for trigger and returns the assembled
// Markdown document without creating or updating any comment. It returns
// ErrReviewsDisabled when the repository opted out.
func (j *ReviewJob) Document(ctx context.Context, trigger core.ReviewTrigger) (string, error) {
	if err := validateTrigger(trigger); err != nil {
		return "", fmt.Errorf("input validation failed: %w", err)
	}

	gh, err := j.ghFactory(ctx, trigger.InstallationID)
	if err != nil {
		return "", fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repoCfg := j.loadRepoConfig(ctx, gh)
	if !repoCfg.IsEnabled() {
		return "", ErrReviewsDisabled
	}

	systemPrompt, err := j.prompts.Render(llm.ReviewSystemPrompt, llm.SystemPromptData{
		Title:              trigger.Title,
		CustomInstructions: repoCfg.CustomInstructions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}

	return j.buildReviewDoc(ctx, gh, trigger, repoCfg.ExcludeExts, systemPrompt), nil
}

// locateTargetComment resolves the comment the review document will be
// published to. Update triggers scan for the first tracked comment and report
// found=false when the PR has none; all other triggers create a fresh
// greeting comment.
func (j *ReviewJob) locateTargetComment(ctx context.Context, gh github.Client, trigger core.ReviewTrigger) (commentID int64, found bool, err error) {
	if trigger.Kind == core.TriggerUpdateReview {
		comments, err := gh.ListIssueComments(ctx, trigger.PRNumber)
		if err != nil {
			j.logger.Error("Error getting comments", "pr", trigger.PRNumber, "error", err)
			return 0, false, fmt.Errorf("failed to list comments for PR %d: %w", trigger.PRNumber, err)
		}
		for _, c := range comments {
			if core.IsTrackedReviewComment(c.Body) {
				return c.ID, true, nil
			}
		}
		return 0, false, nil
	}

	id, err := gh.CreateIssueComment(ctx, trigger.PRNumber, trackedCommentGreeting)
	if err != nil {
		j.logger.Error("Error posting comment", "pr", trigger.PRNumber, "error", err)
		return 0, false, fmt.Errorf("failed to create review comment on PR %d: %w", trigger.PRNumber, err)
	}
	return id, true, nil
}

// buildReviewDoc folds the PR's reviewable files into the final Markdown
// document. Failures degrade per file: a fetch error drops the file's
// section, a model error renders as "N/A", and a file-listing error yields
// the bare preamble.
func (j *ReviewJob) buildReviewDoc(ctx context.Context, gh github.Client, trigger core.ReviewTrigger, excludeExts []string, systemPrompt string) string {
	files, err := gh.ListChangedFiles(ctx, trigger.PRNumber)
	if err != nil {
		j.logger.Error("Cannot get file list", "pr", trigger.PRNumber, "error", err)
		return assembleReviewDoc(nil)
	}

	budget := llm.CharBudget(j.cfg.LLMCtxSize)
	sessionID := core.SessionID(trigger.PRNumber)
	opts := llm.ChatOptions{
		Model:        j.cfg.LLMModelName,
		TokenLimit:   j.cfg.LLMCtxSize,
		Restart:      true,
		SystemPrompt: systemPrompt,
	}

	var reviews []FileReview
	for _, f := range reviewableFiles(files, excludeExts) {
		ref, _ := github.RefFromContentsURL(f.ContentsURL)
		content, err := gh.FetchRawContent(ctx, ref, f.Filename)
		if err != nil {
			j.logger.Error("Error fetching file", "file", f.Filename, "error", err)
			continue
		}

		question, err := j.prompts.Render(llm.ReviewQuestionPrompt, llm.QuestionPromptData{
			Content: llm.TruncateChars(content, budget),
		})
		if err != nil {
			j.logger.Error("Failed to render review question", "file", f.Filename, "error", err)
			continue
		}

		j.logger.Debug("Sending file to LLM", "file", f.Filename)
		findings, err := j.llmClient.Chat(ctx, sessionID, question, opts)
		if err != nil {
			j.logger.Error("LLM returned an error for file review", "file", f.Filename, "error", err)
			reviews = append(reviews, FileReview{Filename: f.Filename, BlobURL: f.BlobURL})
			continue
		}
		reviews = append(reviews, FileReview{Filename: f.Filename, BlobURL: f.BlobURL, Findings: findings, OK: true})
	}
	return assembleReviewDoc(reviews)
}

// loadRepoConfig fetches and parses the repository's own settings file.
// Missing or broken files fall back to the defaults; only unexpected fetch
// failures are worth a log line.
func (j *ReviewJob) loadRepoConfig(ctx context.Context, gh github.Client) *core.RepoConfig {
	raw, err := gh.GetRepoConfig(ctx)
	if err != nil {
		if !errors.Is(err, github.ErrNotFound) {
			j.logger.Warn("Could not fetch repository config, using defaults", "error", err)
		}
		return core.DefaultRepoConfig()
	}
	repoCfg, err := config.ParseRepoConfig(raw)
	if err != nil {
		j.logger.Warn("Could not parse repository config, using defaults", "error", err)
		return core.DefaultRepoConfig()
	}
	return repoCfg
}

// validateTrigger ensures the trigger identifies a reviewable pull request.
func validateTrigger(trigger core.ReviewTrigger) error {
	if trigger.Kind == core.TriggerIgnore {
		return fmt.Errorf("trigger kind %q cannot be processed", trigger.Kind)
	}
	if trigger.PRNumber <= 0 {
		return fmt.Errorf("pull request number must be positive, got: %d", trigger.PRNumber)
	}
	return nil
}
