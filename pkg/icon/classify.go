package icon

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// overrideSuffix matches the size tag at the end of a lower-cased stem.
// The digit group must be present and numeric; "icon-px" or "icon-abcpx"
// stay base icons.
var overrideSuffix = regexp.MustCompile(`-([0-9]+)px$`)

// Classify partitions directory entries into base icons and size-tagged
// overrides.
//
// Only names ending in the vector extension (case-insensitive) are
// considered; anything else is dropped. A file is an override when its
// lower-cased stem ends in "-<N>px" for a positive integer N; every other
// vector file is a base icon. Both result slices are sorted by name so the
// outcome never depends on directory enumeration order.
//
// Example:
//
//	Classify([]string{"logo.svg", "logo-16px.svg", "icon.svg"})
//	  base      -> [icon.svg, logo.svg]
//	  overrides -> [logo-16px.svg]
func Classify(names []string) (base, overrides []SourceFile) {
	for _, name := range names {
		src, ok := parseSource(name)
		if !ok {
			continue
		}
		if src.IsOverride() {
			overrides = append(overrides, src)
		} else {
			base = append(base, src)
		}
	}

	sort.Slice(base, func(i, j int) bool { return base[i].Name < base[j].Name })
	sort.Slice(overrides, func(i, j int) bool { return overrides[i].Name < overrides[j].Name })
	return base, overrides
}

// parseSource classifies a single directory entry. ok is false when the name
// does not carry the vector extension.
func parseSource(name string) (SourceFile, bool) {
	if !strings.HasSuffix(strings.ToLower(name), VectorExt) {
		return SourceFile{}, false
	}

	stem := strings.ToLower(name[:len(name)-len(VectorExt)])
	m := overrideSuffix.FindStringSubmatch(stem)
	if m == nil {
		return SourceFile{Name: name, Kind: KindBase}, true
	}

	size, err := strconv.Atoi(m[1])
	if err != nil || size <= 0 {
		// Suffix shaped like a tag but without a usable positive size;
		// treated as part of the plain name.
		return SourceFile{Name: name, Kind: KindBase}, true
	}

	return SourceFile{Name: name, Kind: KindOverride, OverrideSize: size}, true
}
