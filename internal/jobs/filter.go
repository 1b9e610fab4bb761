package jobs

import (
	"strings"

	"github.com/revbot-io/revbot/internal/core"
	"github.com/revbot-io/revbot/internal/github"
)

// defaultExcludedSuffixes lists file name suffixes that are never reviewed.
// Markup, script, and stylesheet files add little signal and burn context.
var defaultExcludedSuffixes = []string{".md", ".js", ".css", ".html", ".htm"}

// reviewableFiles selects the changed files worth reviewing, preserving the
// input order. A file is dropped when its name ends with an excluded suffix,
// or when its contents URL is too short to carry a 40-character commit ref.
func reviewableFiles(files []core.ChangedFile, extraSuffixes []string) []core.ChangedFile {
	excluded := make([]string, 0, len(defaultExcludedSuffixes)+len(extraSuffixes))
	excluded = append(excluded, defaultExcludedSuffixes...)
	for _, suffix := range extraSuffixes {
		if s := normalizeSuffix(suffix); s != "" {
			excluded = append(excluded, s)
		}
	}

	var selected []core.ChangedFile
	for _, f := range files {
		if hasExcludedSuffix(f.Filename, excluded) {
			continue
		}
		if _, ok := github.RefFromContentsURL(f.ContentsURL); !ok {
			continue
		}
		selected = append(selected, f)
	}
	return selected
}

// normalizeSuffix trims whitespace and ensures a leading dot, so configured
// values like "lock" and ".lock" behave the same.
func normalizeSuffix(suffix string) string {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return ""
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return suffix
}

func hasExcludedSuffix(filename string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}
