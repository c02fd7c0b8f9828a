package vfs

import (
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_AddChildAllowList(t *testing.T) {
	t.Parallel()

	kinds := []Kind{KindRoot, KindDrive, KindFolder, KindZip, KindText}
	allowed := map[Kind][]Kind{
		KindRoot:   {KindDrive},
		KindDrive:  {KindFolder, KindZip, KindText},
		KindFolder: {KindFolder, KindZip, KindText},
		KindZip:    {KindFolder, KindZip, KindText},
		KindText:   nil,
	}
	for _, parentKind := range kinds {
		for _, childKind := range kinds {
			t.Run(parentKind.String()+"/"+childKind.String(), func(t *testing.T) {
				parent := newEntity(parentKind, "p", "p")
				err := parent.addChild(newEntity(childKind, "c", `p\c`))
				if contains(allowed[parentKind], childKind) {
					require.NoError(t, err)
					assert.Equal(t, 1, parent.Len())
				} else {
					require.ErrorIs(t, err, ErrInvalidChildKind)
					assert.Zero(t, parent.Len())
				}
			})
		}
	}
}

func contains(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

func TestEntity_AddChildDuplicate(t *testing.T) {
	t.Parallel()

	d := newEntity(KindDrive, "A", "A")
	require.NoError(t, d.addChild(newEntity(KindFolder, "x", `A\x`)))
	err := d.addChild(newEntity(KindText, "x", `A\x`))
	require.ErrorIs(t, err, ErrDuplicateName)

	c, ok := d.Child("x")
	require.True(t, ok)
	assert.Equal(t, KindFolder, c.Kind())
}

func TestEntity_RemoveChild(t *testing.T) {
	t.Parallel()

	d := newEntity(KindDrive, "A", "A")
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, d.addChild(newEntity(KindText, name, `A\`+name)))
	}

	b, err := d.removeChild("b")
	require.NoError(t, err)
	assert.Equal(t, "b", b.Name())
	assert.Nil(t, b.Parent())
	assert.Equal(t, []string{"a", "c"}, d.ChildNames())

	_, err = d.removeChild("b")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEntity_ChildrenInsertionOrder(t *testing.T) {
	t.Parallel()

	d := newEntity(KindDrive, "A", "A")
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		require.NoError(t, d.addChild(newEntity(KindFolder, name, `A\`+name)))
	}

	var got []string
	for c := range d.Children() {
		got = append(got, c.Name())
	}
	assert.Equal(t, names, got)
	assert.Equal(t, names, d.ChildNames())
}

func TestEntity_SetPathCascades(t *testing.T) {
	t.Parallel()

	f := newEntity(KindFolder, "f", `A\f`)
	z := newEntity(KindZip, "z", `A\f\z`)
	txt := newEntity(KindText, "t", `A\f\z\t`)
	require.NoError(t, f.addChild(z))
	require.NoError(t, z.addChild(txt))

	f.setPath(`B\g\f`)
	assert.Equal(t, `B\g\f`, f.Path())
	assert.Equal(t, `B\g\f\z`, z.Path())
	assert.Equal(t, `B\g\f\z\t`, txt.Path())
	assert.Equal(t, "t", txt.Name())
}

func TestEntity_SetContent(t *testing.T) {
	t.Parallel()

	txt := newEntity(KindText, "t", "A\\t")
	assert.Equal(t, int64(10), txt.setContent("teststring"))
	assert.Equal(t, int64(-6), txt.setContent("test"))
	assert.Equal(t, int64(4), txt.Size())

	// Size counts characters, not bytes.
	assert.Equal(t, int64(-1), txt.setContent("héé"))
	assert.Equal(t, int64(3), txt.Size())
}

func TestEntity_Digest(t *testing.T) {
	t.Parallel()

	txt := newEntity(KindText, "t", "t")
	txt.setContent("hello")
	assert.Equal(t, digest.FromString("hello"), txt.Digest())
	require.NoError(t, txt.Digest().Validate())

	assert.Empty(t, newEntity(KindFolder, "f", "f").Digest())
}

func TestEntity_IDsAreUnique(t *testing.T) {
	t.Parallel()

	a := newEntity(KindFolder, "same", "same")
	b := newEntity(KindFolder, "same", "same")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindDrive, KindFolder, KindZip, KindText} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for _, s := range []string{"root", "", "Drive", "file", "unknown"} {
		_, err := ParseKind(s)
		require.ErrorIs(t, err, ErrInvalidKind, "kind %q", s)
	}
}
