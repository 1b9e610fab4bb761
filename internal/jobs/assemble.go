package jobs

import (
	"fmt"
	"strings"

	"github.com/revbot-io/revbot/internal/core"
)

// Both published bodies must begin with the tracked-comment marker so later
// runs can locate the comment again.
const (
	trackedCommentGreeting = core.CommentMarkerReviewer + "(https://github.com/revbot-io/revbot/).\n\n" +
		"It could take a few minutes for me to analyze this PR. Relax, grab some protein shake and complete 10-15 pushups. Thanks!"

	reviewDocPreamble = core.CommentMarkerReviewer + "(https://github.com/revbot-io/revbot/). " +
		"Here are my reviews of changed source code files in this PR.\n\n------\n\n"
)

// FileReview holds the outcome of reviewing one changed file. OK is false
// when the model call failed; the file is then reported as "N/A" rather than
// dropped from the document.
type FileReview struct {
	Filename string
	BlobURL  string
	Findings string
	OK       bool
}

// assembleReviewDoc renders the Markdown document published to the tracked
// comment. Rendering is pure; the same reviews always produce the same
// document, with files in the order they were reviewed.
func assembleReviewDoc(reviews []FileReview) string {
	var b strings.Builder
	b.WriteString(reviewDocPreamble)
	for _, r := range reviews {
		fmt.Fprintf(&b, "## [%s](%s)\n\n", r.Filename, r.BlobURL)
		b.WriteString("#### Potential issues\n\n")
		if r.OK {
			b.WriteString(r.Findings)
		} else {
			b.WriteString("N/A")
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
