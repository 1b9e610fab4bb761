package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSHA = "8cf27b2403d9a22c927ef54c5fa661747b9b1bd5"

func TestRefFromContentsURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantRef string
		wantOK  bool
	}{
		{
			name:    "contents url with ref query",
			url:     "https://api.github.com/repos/octocat/hello/contents/src/main.py?ref=" + testSHA,
			wantRef: testSHA,
			wantOK:  true,
		},
		{
			name:    "exactly forty characters",
			url:     testSHA,
			wantRef: testSHA,
			wantOK:  true,
		},
		{
			name:   "too short to hold a hash",
			url:    "https://short.example/x",
			wantOK: false,
		},
		{
			name:   "empty url",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := RefFromContentsURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestRawContentURL(t *testing.T) {
	got := RawContentURL("https://raw.githubusercontent.com", "octocat", "hello", testSHA, "src/main.py")
	assert.Equal(t, "https://raw.githubusercontent.com/octocat/hello/"+testSHA+"/src/main.py", got)
}

func newTestClient(rawBaseURL string) *gitHubClient {
	return &gitHubClient{
		owner:      "octocat",
		repo:       "hello",
		rawBaseURL: rawBaseURL,
		rawClient:  &http.Client{Timeout: 5 * time.Second},
		logger:     slog.New(slog.DiscardHandler),
	}
}

func TestFetchRawContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/octocat/hello/"+testSHA+"/src/main.py", r.URL.Path)
		_, _ = w.Write([]byte("print('hi')\n"))
	}))
	defer srv.Close()

	g := newTestClient(srv.URL)
	content, err := g.FetchRawContent(context.Background(), testSHA, "src/main.py")
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", content)
}

func TestFetchRawContent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404: Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestClient(srv.URL)
	_, err := g.FetchRawContent(context.Background(), testSHA, "gone.py")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchRawContent_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	g := newTestClient(srv.URL)
	_, err := g.FetchRawContent(context.Background(), testSHA, "a.py")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to fetch"), "got: %v", err)
}
