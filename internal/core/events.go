// Package core defines the domain types and contracts shared by the webhook
// handler, the job dispatcher, and the review pipeline.
package core

import (
	"strings"

	"github.com/google/go-github/v73/github"
)

// TriggerKind classifies what an incoming webhook event asks the agent to do.
type TriggerKind int

const (
	// TriggerIgnore marks events the agent takes no action on.
	TriggerIgnore TriggerKind = iota
	// TriggerNewReview requests a review published as a freshly created comment.
	TriggerNewReview
	// TriggerUpdateReview requests a review that overwrites the existing
	// tracked comment on the pull request.
	TriggerUpdateReview
)

// String returns the trigger kind name for logging.
func (k TriggerKind) String() string {
	switch k {
	case TriggerNewReview:
		return "new-review"
	case TriggerUpdateReview:
		return "update-review"
	default:
		return "ignore"
	}
}

// ReviewTrigger is the normalized outcome of classifying one webhook event.
// Classification is pure: it performs no API calls, and missing optional
// payload fields degrade to zero values rather than failing.
type ReviewTrigger struct {
	Kind           TriggerKind
	PRNumber       int
	Title          string
	Author         string
	InstallationID int64
}

// ClassifyPullRequest maps a pull_request event to a trigger. An opened pull
// request starts a new review, a synchronized one updates the existing
// review, and every other action is ignored.
func ClassifyPullRequest(event *github.PullRequestEvent) ReviewTrigger {
	var kind TriggerKind
	switch event.GetAction() {
	case "opened":
		kind = TriggerNewReview
	case "synchronize":
		kind = TriggerUpdateReview
	default:
		return ReviewTrigger{Kind: TriggerIgnore}
	}

	pr := event.GetPullRequest()
	return ReviewTrigger{
		Kind:           kind,
		PRNumber:       pr.GetNumber(),
		Title:          pr.GetTitle(),
		Author:         pr.GetUser().GetLogin(),
		InstallationID: event.GetInstallation().GetID(),
	}
}

// ClassifyIssueComment maps an issue_comment event to a trigger. A comment
// qualifies when it was not deleted, was not authored by the agent itself,
// and starts with the trigger phrase (compared case-insensitively).
// Qualifying comments always start a fresh review, even when a tracked
// comment already exists on the pull request; they never classify as an
// update. Comments on plain issues qualify too; the review run then degrades
// when the issue turns out to have no changed files.
func ClassifyIssueComment(event *github.IssueCommentEvent, triggerPhrase string) ReviewTrigger {
	ignore := ReviewTrigger{Kind: TriggerIgnore}

	if event.GetAction() == "deleted" {
		return ignore
	}

	body := event.GetComment().GetBody()
	if IsAgentComment(body) {
		return ignore
	}
	if !strings.HasPrefix(strings.ToLower(body), strings.ToLower(triggerPhrase)) {
		return ignore
	}

	issue := event.GetIssue()
	return ReviewTrigger{
		Kind:           TriggerNewReview,
		PRNumber:       issue.GetNumber(),
		Title:          issue.GetTitle(),
		Author:         issue.GetUser().GetLogin(),
		InstallationID: event.GetInstallation().GetID(),
	}
}
