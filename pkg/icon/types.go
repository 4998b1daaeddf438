package icon

import (
	"sort"
	"strconv"
	"strings"
)

const (
	// VectorExt is the extension of vector icon sources (matched case-insensitively).
	VectorExt = ".svg"

	// ContainerExt is the extension of packed multi-resolution outputs.
	ContainerExt = ".ico"
)

// Kind distinguishes base icons from size-tagged overrides.
type Kind int

const (
	// KindBase marks a source with no size suffix; it services the largest
	// requested size and everything no override covers.
	KindBase Kind = iota

	// KindOverride marks a source whose name carries a "-<N>px" suffix,
	// declaring the maximum pixel size it is drawn for.
	KindOverride
)

// String returns a readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindOverride:
		return "override"
	default:
		return "base"
	}
}

// SourceFile represents one vector icon file in an input folder.
type SourceFile struct {
	// Name is the file name including extension, e.g. "folder-16px.svg"
	Name string

	// Kind tells whether this is a base icon or a size override
	Kind Kind

	// OverrideSize is the maximum pixel size declared in the name.
	// Zero for base icons.
	OverrideSize int
}

// Stem returns the file name without its extension.
func (f SourceFile) Stem() string {
	if idx := strings.LastIndex(f.Name, "."); idx >= 0 {
		return f.Name[:idx]
	}
	return f.Name
}

// IsOverride reports whether the source carries a size suffix.
func (f SourceFile) IsOverride() bool {
	return f.Kind == KindOverride
}

// String returns the file name
func (f SourceFile) String() string {
	return f.Name
}

// SizeSet is the ascending, de-duplicated sequence of requested output pixel
// sizes for one run. The zero value is empty and only valid as input to
// Resolve, which rejects it with a ResolutionError.
type SizeSet []int

// NewSizeSet builds a SizeSet from the given values: sorted ascending with
// duplicates removed. At least one value is required and every value must be
// a positive integer.
func NewSizeSet(values ...int) (SizeSet, error) {
	if len(values) == 0 {
		return nil, ErrEmptySizeSet
	}

	seen := make(map[int]bool, len(values))
	out := make(SizeSet, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			return nil, ErrNonPositiveSize
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	sort.Ints(out)
	return out, nil
}

// ParseSizeSet parses a space-separated size list such as "16 32 48 256".
func ParseSizeSet(input string) (SizeSet, error) {
	fields := strings.Fields(input)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrNonPositiveSize
		}
		values = append(values, v)
	}
	return NewSizeSet(values...)
}

// Max returns the largest size in the set, zero when empty.
func (s SizeSet) Max() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Contains reports whether size is in the set.
func (s SizeSet) Contains(size int) bool {
	for _, v := range s {
		if v == size {
			return true
		}
	}
	return false
}

// String renders the set space-separated, e.g. "16 32 48".
func (s SizeSet) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// overrideStem builds the stem an override must carry to service the given
// size for this base, e.g. ("folder", 16) -> "folder-16px".
func overrideStem(baseStem string, size int) string {
	return baseStem + "-" + strconv.Itoa(size) + "px"
}
