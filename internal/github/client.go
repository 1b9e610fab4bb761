// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/revbot-io/revbot/internal/core"
)

// ErrNotFound reports a missing resource, such as an absent .revbot.yml.
var ErrNotFound = errors.New("resource not found")

// repoConfigPath is where a repository may keep its agent settings.
const repoConfigPath = ".revbot.yml"

// Client defines the host-API operations the review pipeline needs: the
// tracked comment, the changed-file listing, raw blob content, and the
// repository's optional config file. A client is bound to one repository.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks -mock_names Client=MockGitHubClient . Client
type Client interface {
	GetPullRequest(ctx context.Context, number int) (*github.PullRequest, error)
	ListIssueComments(ctx context.Context, number int) ([]core.IssueComment, error)
	CreateIssueComment(ctx context.Context, number int, body string) (int64, error)
	UpdateIssueComment(ctx context.Context, commentID int64, body string) error
	ListChangedFiles(ctx context.Context, number int) ([]core.ChangedFile, error)
	FetchRawContent(ctx context.Context, ref, filename string) (string, error)
	GetRepoConfig(ctx context.Context) ([]byte, error)
}

type gitHubClient struct {
	client     *github.Client
	owner      string
	repo       string
	rawBaseURL string
	rawClient  *http.Client
	logger     *slog.Logger
}

// NewGitHubClient wraps the official go-github client to provide a focused,
// testable interface for the repository named by owner and repo.
func NewGitHubClient(client *github.Client, owner, repo string, logger *slog.Logger) Client {
	return &gitHubClient{
		client:     client,
		owner:      owner,
		repo:       repo,
		rawBaseURL: rawContentBaseURL,
		rawClient:  &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// NewPATClient creates a GitHub client authenticated with a personal access
// token. This is the path CLI runs and token-based deployments use.
func NewPATClient(ctx context.Context, token, owner, repo string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return NewGitHubClient(github.NewClient(tc), owner, repo, logger)
}

// GetPullRequest fetches the details of a pull request.
func (g *gitHubClient) GetPullRequest(ctx context.Context, number int) (*github.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "pr", number, "error", err)
		return nil, fmt.Errorf("failed to get PR %d: %w", number, err)
	}
	return pr, nil
}

// ListIssueComments retrieves all comments on a pull request in their API
// order. Pagination is handled internally, 100 comments per page.
func (g *gitHubClient) ListIssueComments(ctx context.Context, number int) ([]core.IssueComment, error) {
	var all []core.IssueComment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := g.client.Issues.ListComments(ctx, g.owner, g.repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list comments", "pr", number, "error", err)
			return nil, fmt.Errorf("failed to list comments for PR %d: %w", number, err)
		}

		for _, c := range comments {
			all = append(all, core.IssueComment{ID: c.GetID(), Body: c.GetBody()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// CreateIssueComment posts a new comment on a pull request and returns its id.
func (g *gitHubClient) CreateIssueComment(ctx context.Context, number int, body string) (int64, error) {
	comment, _, err := g.client.Issues.CreateComment(ctx, g.owner, g.repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		g.logger.Error("failed to create comment", "pr", number, "error", err)
		return 0, fmt.Errorf("failed to create comment on PR %d: %w", number, err)
	}
	return comment.GetID(), nil
}

// UpdateIssueComment overwrites the body of an existing comment.
func (g *gitHubClient) UpdateIssueComment(ctx context.Context, commentID int64, body string) error {
	_, _, err := g.client.Issues.EditComment(ctx, g.owner, g.repo, commentID, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		g.logger.Error("failed to update comment", "comment_id", commentID, "error", err)
		return fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}
	return nil
}

// ListChangedFiles retrieves the files modified in a pull request, preserving
// the API's ordering. Pagination is handled internally because the GitHub API
// returns at most 100 files per page.
func (g *gitHubClient) ListChangedFiles(ctx context.Context, number int) ([]core.ChangedFile, error) {
	var all []core.ChangedFile
	opts := &github.ListOptions{PerPage: 100}

	for {
		files, resp, err := g.client.PullRequests.ListFiles(ctx, g.owner, g.repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "pr", number, "error", err)
			return nil, fmt.Errorf("failed to list files for PR %d: %w", number, err)
		}

		for _, file := range files {
			all = append(all, core.ChangedFile{
				Filename:    file.GetFilename(),
				BlobURL:     file.GetBlobURL(),
				ContentsURL: file.GetContentsURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetRepoConfig downloads the repository's .revbot.yml from the default
// branch. ErrNotFound is returned when the repository does not carry one.
func (g *gitHubClient) GetRepoConfig(ctx context.Context) ([]byte, error) {
	fileContent, _, resp, err := g.client.Repositories.GetContents(ctx, g.owner, g.repo, repoConfigPath, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		g.logger.Error("failed to get repo config", "path", repoConfigPath, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", repoConfigPath, err)
	}
	if fileContent == nil {
		return nil, ErrNotFound
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", repoConfigPath, err)
	}
	return []byte(content), nil
}
