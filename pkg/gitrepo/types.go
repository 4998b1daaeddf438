package gitrepo

import (
	"path"
	"strings"
)

// ChangeCode classifies one entry of the short-format working tree status.
type ChangeCode int

const (
	// Added marks a newly staged file
	Added ChangeCode = iota
	// Modified marks a staged content change
	Modified
	// Deleted marks a staged removal
	Deleted
	// Renamed marks a staged rename carrying both path sides
	Renamed
	// Other covers every remaining status code, including untracked
	Other
)

// String returns a human-readable representation of the change code
func (c ChangeCode) String() string {
	switch c {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	default:
		return "other"
	}
}

// StatusEntry is one parsed line of `git status --porcelain` output.
type StatusEntry struct {
	// Code is the staged change classification
	Code ChangeCode
	// Path is the current path; for renames this is the new path
	Path string
	// RenamedFrom is the pre-rename path, set only when Code is Renamed
	RenamedFrom string
}

// DisplayName returns the file name used when reporting this entry.
// Renamed entries report their pre-rename name.
func (e StatusEntry) DisplayName() string {
	if e.Code == Renamed && e.RenamedFrom != "" {
		return path.Base(e.RenamedFrom)
	}
	return path.Base(e.Path)
}

// Status is the parsed working tree status.
type Status []StatusEntry

// IsClean reports whether the working tree has no pending changes
func (s Status) IsClean() bool {
	return len(s) == 0
}

// StatusSummary partitions a working tree status for commit message
// synthesis: per-code file names restricted to the tracked extensions,
// plus the full path list for fallback classification.
type StatusSummary struct {
	// AddedIcons holds display names of added tracked files
	AddedIcons []string
	// ModifiedIcons holds display names of modified and renamed tracked files
	ModifiedIcons []string
	// DeletedIcons holds display names of deleted tracked files
	DeletedIcons []string
	// AllPaths holds the path of every status entry, tracked or not
	AllPaths []string
}

// HasIconChanges reports whether any tracked file landed in a partition
func (s StatusSummary) HasIconChanges() bool {
	return len(s.AddedIcons)+len(s.ModifiedIcons)+len(s.DeletedIcons) > 0
}

// Summarize buckets entries by change code. Only paths ending in one of
// exts land in the tracked partitions. Renames classify by their new
// path, count as modified, and report the pre-rename name.
func (s Status) Summarize(exts ...string) StatusSummary {
	var sum StatusSummary
	for _, e := range s {
		sum.AllPaths = append(sum.AllPaths, e.Path)
		if !hasAnySuffix(e.Path, exts) {
			continue
		}
		name := e.DisplayName()
		switch e.Code {
		case Added:
			sum.AddedIcons = append(sum.AddedIcons, name)
		case Modified, Renamed:
			sum.ModifiedIcons = append(sum.ModifiedIcons, name)
		case Deleted:
			sum.DeletedIcons = append(sum.DeletedIcons, name)
		}
	}
	return sum
}

func hasAnySuffix(p string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// ParseStatus parses `git status --porcelain` output. The first byte of
// each line is the staged change code and the path starts at byte 3.
// Rename lines split on the arrow into both path sides.
func ParseStatus(out string) Status {
	var entries Status
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		raw := strings.Trim(strings.TrimSpace(line[3:]), `"`)
		if raw == "" {
			continue
		}
		entry := StatusEntry{Code: parseCode(line[0]), Path: raw}
		if entry.Code == Renamed {
			if from, to, ok := strings.Cut(raw, " -> "); ok {
				entry.RenamedFrom = strings.Trim(from, `"`)
				entry.Path = strings.Trim(to, `"`)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func parseCode(code byte) ChangeCode {
	switch code {
	case 'A':
		return Added
	case 'M':
		return Modified
	case 'D':
		return Deleted
	case 'R':
		return Renamed
	default:
		return Other
	}
}

// ChangeSet is the set of paths that differ from the last commit. Paths
// are absolute and cleaned so membership tests are exact string matches.
type ChangeSet map[string]struct{}

// NewChangeSet creates a ChangeSet holding the given paths
func NewChangeSet(paths ...string) ChangeSet {
	set := make(ChangeSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}
	return set
}

// Add inserts a path into the set
func (s ChangeSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether the exact path is in the set
func (s ChangeSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths in the set
func (s ChangeSet) Len() int {
	return len(s)
}
