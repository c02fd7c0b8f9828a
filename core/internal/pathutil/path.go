// Package pathutil provides path manipulation for backslash-separated tree paths.
package pathutil

import "strings"

// Separator joins path segments.
const Separator = `\`

// RootAlias names the root when it is the whole path.
const RootAlias = "root"

// Segments splits p on the separator and drops empty segments.
// The empty path, a path of only separators and RootAlias (optionally
// surrounded by separators) all yield nil.
func Segments(p string) []string {
	parts := strings.Split(p, Separator)
	result := parts[:0] // reuse backing array
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 || (len(result) == 1 && result[0] == RootAlias) {
		return nil
	}
	return result
}

// Join joins segments with the separator.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Child returns the path of name beneath parent.
// An empty parent is the root, whose children are addressed by name alone.
func Child(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Separator + name
}

// Split separates the canonical form of p into its parent path and last segment.
// For the root, both results are empty.
func Split(p string) (dir, base string) {
	segs := Segments(p)
	if len(segs) == 0 {
		return "", ""
	}
	return Join(segs[:len(segs)-1]...), segs[len(segs)-1]
}

// ValidName reports whether name can be addressed by a path.
func ValidName(name string) bool {
	return name != "" && name != RootAlias && !strings.Contains(name, Separator)
}
