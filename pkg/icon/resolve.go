package icon

import (
	"path/filepath"
)

// PlanEntry assigns one vector source to the contiguous run of output sizes
// it services.
type PlanEntry struct {
	// Source is the path of the vector file to rasterize
	Source string

	// MaxSize is the largest size this source is declared for
	MaxSize int

	// Sizes is the ascending run of output sizes serviced by Source
	Sizes []int
}

// RenderPlan is the resolved mapping of every requested output size to a
// source file for one base icon. Concatenating Sizes across Entries yields
// the full size set in order, each size exactly once.
type RenderPlan struct {
	// Base is the icon the plan was built for
	Base SourceFile

	// Entries list sources in ascending size order
	Entries []PlanEntry
}

// SourceCount returns how many distinct sources the plan draws from.
func (p RenderPlan) SourceCount() int {
	return len(p.Entries)
}

// candidate is one slot in the ordered source list the resolver walks.
type candidate struct {
	path  string
	bound int
}

// Resolve builds the render plan for one base icon.
//
// The candidate list holds every override exactly matching
// "<stem>-<size>px" for a requested size below the maximum, ascending by
// size, with the base file appended as the catch-all bounded by the largest
// requested size. Overrides tagged with the maximum size itself are never
// candidates; the top size always falls back to the base artwork.
//
// Sizes are walked ascending with a single forward index into the candidate
// list: whenever the target size exceeds the current candidate's bound the
// index advances, repeatedly if needed, until a candidate covers the target.
// Each size therefore lands on the smallest source whose bound reaches it.
// Consecutive sizes landing on the same candidate are grouped into one entry.
//
// dir is the folder holding the sources; entry paths are dir-joined.
// An empty size set and candidate exhaustion both yield a ResolutionError;
// exhaustion cannot happen while the base catch-all invariant holds and is
// reported as a contract violation rather than recovered from.
func Resolve(base SourceFile, overrides []SourceFile, sizes SizeSet, dir string) (RenderPlan, error) {
	if len(sizes) == 0 {
		return RenderPlan{}, NewResolutionError(base.Name, ErrEmptySizeSet)
	}

	candidates := buildCandidates(base, overrides, sizes, dir)

	assigned, err := assignSizes(candidates, sizes)
	if err != nil {
		return RenderPlan{}, NewResolutionError(base.Name, err)
	}

	plan := RenderPlan{Base: base}
	for i := 0; i < len(sizes); {
		j := i
		for j < len(sizes) && assigned[j] == assigned[i] {
			j++
		}
		c := candidates[assigned[i]]
		plan.Entries = append(plan.Entries, PlanEntry{
			Source:  c.path,
			MaxSize: c.bound,
			Sizes:   append([]int(nil), sizes[i:j]...),
		})
		i = j
	}

	return plan, nil
}

// assignSizes maps each size to a candidate index via the forward walk.
// Exhaustion past the final candidate means the catch-all invariant was
// broken by the caller.
func assignSizes(candidates []candidate, sizes SizeSet) ([]int, error) {
	assigned := make([]int, len(sizes))
	idx := 0
	for i, size := range sizes {
		for size > candidates[idx].bound {
			idx++
			if idx == len(candidates) {
				return nil, ErrExhaustedCandidates
			}
		}
		assigned[i] = idx
	}
	return assigned, nil
}

// buildCandidates assembles the ordered source list: exact-match overrides
// for every non-maximum size, then the base catch-all.
func buildCandidates(base SourceFile, overrides []SourceFile, sizes SizeSet, dir string) []candidate {
	byStem := make(map[string]SourceFile, len(overrides))
	for _, o := range overrides {
		byStem[o.Stem()] = o
	}

	candidates := make([]candidate, 0, len(sizes))
	for _, size := range sizes[:len(sizes)-1] {
		o, ok := byStem[overrideStem(base.Stem(), size)]
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{
			path:  filepath.Join(dir, o.Name),
			bound: size,
		})
	}

	return append(candidates, candidate{
		path:  filepath.Join(dir, base.Name),
		bound: sizes.Max(),
	})
}
