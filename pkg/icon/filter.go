package icon

import (
	"path/filepath"
)

// PathSet reports membership of normalized file paths. Implemented by
// the git layer's change set; kept as an interface so this package stays
// free of version-control concerns.
type PathSet interface {
	Contains(path string) bool
}

// FilterChanged narrows a base-icon worklist to icons touched by the given
// change set.
//
// A base icon passes when its own path is in the set, or when an override
// matching "<stem>-<size>px" for ANY requested size is. Unlike the
// resolver's candidate rule, the maximum size participates here: an
// override tagged with the top size never renders, but editing it still
// marks its base icon dirty.
//
// dir must be the same (absolute) folder the change set's paths were
// normalized against; names are dir-joined and cleaned before lookup.
// Input order is preserved. Pure membership computation; detecting changes
// is the caller's job.
func FilterChanged(baseFiles, overrides []SourceFile, changed PathSet, dir string, sizes SizeSet) []SourceFile {
	byStem := make(map[string]SourceFile, len(overrides))
	for _, o := range overrides {
		byStem[o.Stem()] = o
	}

	filtered := make([]SourceFile, 0, len(baseFiles))
	for _, base := range baseFiles {
		if changed.Contains(normalize(dir, base.Name)) {
			filtered = append(filtered, base)
			continue
		}

		for _, size := range sizes {
			o, ok := byStem[overrideStem(base.Stem(), size)]
			if !ok {
				continue
			}
			if changed.Contains(normalize(dir, o.Name)) {
				filtered = append(filtered, base)
				break
			}
		}
	}

	return filtered
}

func normalize(dir, name string) string {
	return filepath.Clean(filepath.Join(dir, name))
}
