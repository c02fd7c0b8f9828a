package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/vfs"
)

func TestRunDemo(t *testing.T) {
	fsys := vfs.New()
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, fsys, demoSteps()))

	out := buf.String()
	assert.Contains(t, out, "12. Move Folder B into Zip D")
	assert.True(t, strings.HasSuffix(out, strings.Join([]string{
		"root 0",
		"DriveA 12",
		"FolderA 0",
		"ZipD 12",
		"TextB 16",
		"FolderB 8",
		"FolderC 8",
		"TextA 8",
		"DriveB 0",
		"",
		"",
	}, "\n")), out)
}

func TestRunDemo_StopsOnError(t *testing.T) {
	fsys := vfs.New()
	steps := []step{
		{"Adding Drive A", create("drive", "DriveA", "")},
		{"Adding Folder at root", create("folder", "F", "")},
		{"Never runs", create("drive", "DriveB", "")},
	}
	var buf bytes.Buffer
	err := runDemo(&buf, fsys, steps)
	require.ErrorIs(t, err, vfs.ErrInvalidChildKind)
	assert.NotContains(t, buf.String(), "Never runs")
	assert.Equal(t, 1, fsys.Len())
}

func TestExportTree(t *testing.T) {
	fsys := vfs.New()
	require.NoError(t, runDemo(&bytes.Buffer{}, fsys, demoSteps()))

	path := filepath.Join(t.TempDir(), "tree.tar.zst")
	require.NoError(t, exportTree(path, fsys))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	restored, err := vfs.Import(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, fsys.Render(), restored.Render())
}
