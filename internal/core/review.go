package core

import (
	"fmt"
	"strings"
)

// Markers the agent stamps on, and scans for in, pull-request comments. Both
// historical phrasings are recognized so reviews posted by older deployments
// keep being updated in place instead of being duplicated.
const (
	CommentMarkerReviewer = "Hello, I am a [code reviewer]"
	CommentMarkerAgent    = "Hello, I am a [code review agent]"

	selfIntroPlain = "Hello, I am a code reviewer"
)

// SessionID returns the stable model-session id for a pull request. All file
// reviews of one PR share it so the backend can group the exchanges.
func SessionID(prNumber int) string {
	return fmt.Sprintf("PR#%d", prNumber)
}

// IsTrackedReviewComment reports whether body belongs to the single review
// comment the agent maintains on a pull request.
func IsTrackedReviewComment(body string) bool {
	return strings.HasPrefix(body, CommentMarkerReviewer) ||
		strings.HasPrefix(body, CommentMarkerAgent)
}

// IsAgentComment reports whether body was authored by the agent, or
// introduces itself the way the agent does. Reacting to such comments would
// let the agent trigger itself.
func IsAgentComment(body string) bool {
	return strings.HasPrefix(body, selfIntroPlain) || IsTrackedReviewComment(body)
}

// ChangedFile is one reviewable file of a pull request. ContentsURL ends in
// the 40-character commit hash used to address the raw blob. ChangedFiles are
// transient; nothing about them outlives a single review run.
type ChangedFile struct {
	Filename    string
	BlobURL     string
	ContentsURL string
}

// IssueComment is the narrow view of a pull-request comment the comment
// locator works with.
type IssueComment struct {
	ID   int64
	Body string
}
