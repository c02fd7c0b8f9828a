package vfs

import "github.com/meigma/vfs/core/internal/pathutil"

// Separator joins the names that make up a path.
const Separator = pathutil.Separator

// RootAlias addresses the root when used as a whole path.
const RootAlias = pathutil.RootAlias

// NormalizePath converts a user-provided path to its canonical form.
//
// It performs the following transformations:
//   - Strips leading separators: `\A\b` → `A\b`
//   - Strips trailing separators: `A\b\` → `A\b`
//   - Collapses consecutive separators: `A\\b` → `A\b`
//   - Converts the root forms "", `\` and "root" to ""
//
// Two paths address the same entity exactly when their normalized forms are equal.
func NormalizePath(p string) string {
	return pathutil.Join(pathutil.Segments(p)...)
}

// SplitPath returns the names along p, with empty segments dropped.
// The root forms yield an empty slice.
func SplitPath(p string) []string {
	return pathutil.Segments(p)
}

// SplitParent separates p into the path of its parent and its own name.
// For the root forms both results are empty.
func SplitParent(p string) (parent, name string) {
	return pathutil.Split(p)
}
