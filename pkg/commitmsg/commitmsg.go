// Package commitmsg builds conventional commit messages from a parsed
// working tree status. The rules favor icon changes, then documentation,
// then CI configuration, then a dated fallback.
package commitmsg

import (
	"fmt"
	"strings"
	"time"

	"github.com/joffroy59/icoforge/pkg/gitrepo"
	"github.com/joffroy59/icoforge/pkg/icon"
)

const (
	docsExtension = ".md"
	ciMarker      = ".github"
	dateLayout    = "2006-01-02"
)

// trackedExtensions mark the files the feat rules count: vector sources
// and packed container outputs.
var trackedExtensions = []string{icon.VectorExt, icon.ContainerExt}

// FromStatus summarizes the status with the tracked icon extensions and
// synthesizes a message from it.
func FromStatus(status gitrepo.Status, now time.Time) string {
	return Synthesize(status.Summarize(trackedExtensions...), now)
}

// Synthesize produces one commit message for the summary. Rules apply
// in priority order, first match wins:
//
//  1. exactly one added icon and no other icon change: "feat: add <name>"
//  2. exactly one modified icon and no other icon change: "feat: update <name>"
//  3. any other icon change mix: "feat: " with comma-joined non-zero
//     clauses "add <n>", "update <n>", "remove <n>" in that order
//  4. no icon changes, a changed path ends in ".md": documentation message
//  5. no icon or docs changes, a changed path contains ".github": CI message
//  6. otherwise a dated chore message
//
// The function is total: every summary yields a message.
func Synthesize(sum gitrepo.StatusSummary, now time.Time) string {
	added, modified, deleted := sum.AddedIcons, sum.ModifiedIcons, sum.DeletedIcons

	switch {
	case len(added) == 1 && len(modified) == 0 && len(deleted) == 0:
		return "feat: add " + added[0]
	case len(modified) == 1 && len(added) == 0 && len(deleted) == 0:
		return "feat: update " + modified[0]
	case sum.HasIconChanges():
		var clauses []string
		if len(added) > 0 {
			clauses = append(clauses, fmt.Sprintf("add %d", len(added)))
		}
		if len(modified) > 0 {
			clauses = append(clauses, fmt.Sprintf("update %d", len(modified)))
		}
		if len(deleted) > 0 {
			clauses = append(clauses, fmt.Sprintf("remove %d", len(deleted)))
		}
		return "feat: " + strings.Join(clauses, ", ")
	}

	for _, p := range sum.AllPaths {
		if strings.HasSuffix(p, docsExtension) {
			return "docs: update documentation"
		}
	}
	for _, p := range sum.AllPaths {
		if strings.Contains(p, ciMarker) {
			return "ci: update workflow"
		}
	}
	return "chore: update files " + now.Format(dateLayout)
}
