package vfs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem_QuickStart(t *testing.T) {
	t.Parallel()

	fsys := New()
	_, err := fsys.Create("drive", "A", "")
	require.NoError(t, err)
	_, err = fsys.Create("zip", "z", "A")
	require.NoError(t, err)
	_, err = fsys.Create("text", "t", `A\z`)
	require.NoError(t, err)
	require.NoError(t, fsys.WriteToFile(`A\z\t`, "teststring"))

	info, err := fsys.Stat("A")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, KindDrive, info.Kind)
}

func TestFileSystem_ErrorsMatch(t *testing.T) {
	t.Parallel()

	fsys := New()
	_, err := fsys.Create("folder", "x", "root")
	require.ErrorIs(t, err, ErrInvalidChildKind)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "x", pathErr.Path)
}

func TestExportImport(t *testing.T) {
	t.Parallel()

	fsys := New()
	_, err := fsys.Create("drive", "A", "")
	require.NoError(t, err)
	_, err = fsys.Create("zip", "z", "A")
	require.NoError(t, err)
	_, err = fsys.Create("text", "t", `A\z`)
	require.NoError(t, err)
	require.NoError(t, fsys.WriteToFile(`A\z\t`, "abcdefghijk"))

	var buf bytes.Buffer
	require.NoError(t, Export(context.Background(), &buf, fsys))

	restored, err := Import(context.Background(), &buf, WithMaxContentSize(64))
	require.NoError(t, err)
	assert.Equal(t, fsys.Render(), restored.Render())
	assert.Equal(t, "root 0\nA 6\nz 6\nt 11\n", restored.Render())
}

func TestImport_ContentLimit(t *testing.T) {
	t.Parallel()

	fsys := New()
	_, err := fsys.Create("drive", "A", "")
	require.NoError(t, err)
	_, err = fsys.Create("text", "t", "A")
	require.NoError(t, err)
	require.NoError(t, fsys.WriteToFile(`A\t`, "abcdefghijk"))

	var buf bytes.Buffer
	require.NoError(t, Export(context.Background(), &buf, fsys))

	_, err = Import(context.Background(), &buf, WithMaxContentSize(10))
	require.ErrorIs(t, err, ErrContentTooLarge)
}
