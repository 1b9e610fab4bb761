package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// rawContentBaseURL is the host serving raw blob content.
const rawContentBaseURL = "https://raw.githubusercontent.com"

// RefFromContentsURL extracts the trailing 40-character commit hash from a
// file's contents URL. ok is false when the URL is too short to carry one.
func RefFromContentsURL(contentsURL string) (ref string, ok bool) {
	if len(contentsURL) < 40 {
		return "", false
	}
	return contentsURL[len(contentsURL)-40:], true
}

// RawContentURL builds the canonical raw blob URL for one file at one commit.
func RawContentURL(baseURL, owner, repo, ref, filename string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", baseURL, owner, repo, ref, filename)
}

// FetchRawContent downloads one file's content at the given commit ref. Any
// network error, non-200 status, or body-read failure is reported to the
// caller, which treats it as a per-file skip.
func (g *gitHubClient) FetchRawContent(ctx context.Context, ref, filename string) (string, error) {
	url := RawContentURL(g.rawBaseURL, g.owner, g.repo, ref, filename)
	g.logger.Debug("fetching raw content", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build raw content request for %s: %w", filename, err)
	}

	resp, err := g.rawClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("raw content request for %s returned status %d", filename, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read content of %s: %w", filename, err)
	}
	return string(body), nil
}
