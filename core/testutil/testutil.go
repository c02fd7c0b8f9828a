// Package testutil provides helpers shared by the tree and archive tests.
package testutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	vfs "github.com/meigma/vfs/core"
)

// MustCreate creates an entity and fails the test on error.
func MustCreate(tb testing.TB, tr *vfs.Tree, kind, name, parentPath string) *vfs.Entity {
	tb.Helper()
	e, err := tr.Create(kind, name, parentPath)
	require.NoError(tb, err)
	return e
}

// MustWrite writes text content and fails the test on error.
func MustWrite(tb testing.TB, tr *vfs.Tree, path, content string) {
	tb.Helper()
	require.NoError(tb, tr.WriteToFile(path, content))
}

// MustSize asserts the cached size of the entity at path.
func MustSize(tb testing.TB, tr *vfs.Tree, path string, want int64) {
	tb.Helper()
	info, err := tr.Stat(path)
	require.NoError(tb, err)
	require.Equal(tb, want, info.Size, "size of %q", path)
}

// RequireConsistent recomputes every size, path and link in tr from scratch
// and fails the test on the first divergence from the cached state.
func RequireConsistent(tb testing.TB, tr *vfs.Tree) {
	tb.Helper()
	root := tr.Root()
	require.Equal(tb, vfs.KindRoot, root.Kind())
	require.Empty(tb, root.Path())
	require.Nil(tb, root.Parent())
	require.Zero(tb, root.Size(), "root size")

	count := checkEntity(tb, tr, root)
	require.Equal(tb, tr.Len(), count-1, "entity count")
}

func checkEntity(tb testing.TB, tr *vfs.Tree, e *vfs.Entity) int {
	tb.Helper()
	n := 1
	var sum int64
	seen := make(map[string]struct{}, e.Len())
	for c := range e.Children() {
		require.Same(tb, e, c.Parent(), "parent of %q", c.Path())
		require.True(tb, e.Kind().Allows(c.Kind()), "%s under %s at %q", c.Kind(), e.Kind(), c.Path())

		want := c.Name()
		if e.Path() != "" {
			want = e.Path() + vfs.Separator + c.Name()
		}
		require.Equal(tb, want, c.Path(), "path of %q", c.Name())

		_, dup := seen[c.Name()]
		require.False(tb, dup, "duplicate name %q", c.Path())
		seen[c.Name()] = struct{}{}

		got, ok := e.Child(c.Name())
		require.True(tb, ok)
		require.Same(tb, c, got)

		indexed, ok := tr.LookupID(c.ID())
		require.True(tb, ok, "id index missing %q", c.Path())
		require.Same(tb, c, indexed)

		sum += c.Size()
		n += checkEntity(tb, tr, c)
	}
	require.Len(tb, e.ChildNames(), e.Len())

	switch e.Kind() {
	case vfs.KindRoot:
	case vfs.KindText:
		require.Zero(tb, e.Len())
		require.Equal(tb, int64(utf8.RuneCountInString(e.Content())), e.Size(), "size of %q", e.Path())
	case vfs.KindZip:
		require.Equal(tb, (sum+1)/2, e.Size(), "size of zip %q", e.Path())
	default:
		require.Equal(tb, sum, e.Size(), "size of %q", e.Path())
	}
	return n
}
