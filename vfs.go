package vfs

import (
	"context"
	"io"

	"github.com/meigma/vfs/archive"
	vfscore "github.com/meigma/vfs/core"
)

// --- Re-exports from core ---

// FileSystem is an in-memory tree rooted at a single root entity.
type FileSystem = vfscore.Tree

// Entity is one node of a FileSystem.
type Entity = vfscore.Entity

// Info is a point-in-time copy of an entity's state.
type Info = vfscore.Info

// Kind identifies the type of an entity.
type Kind = vfscore.Kind

// Option configures a FileSystem.
type Option = vfscore.Option

// Kind constants.
const (
	KindRoot   = vfscore.KindRoot
	KindDrive  = vfscore.KindDrive
	KindFolder = vfscore.KindFolder
	KindZip    = vfscore.KindZip
	KindText   = vfscore.KindText
)

// Separator joins the names that make up a path.
const Separator = vfscore.Separator

// Re-exported functions.
var (
	// New creates an empty FileSystem holding only the root.
	New = vfscore.New

	// WithLogger sets the logger for tree mutations.
	WithLogger = vfscore.WithLogger

	// WithMaxContentSize limits the size, in characters, of text file content.
	WithMaxContentSize = vfscore.WithMaxContentSize

	// WithMaxEntities limits the number of entities below the root.
	WithMaxEntities = vfscore.WithMaxEntities

	// ParseKind maps "drive", "folder", "zip" or "text" to its Kind.
	ParseKind = vfscore.ParseKind

	// NormalizePath converts a path to its canonical form.
	NormalizePath = vfscore.NormalizePath

	// Render returns the diagnostic listing of the subtree at an entity.
	Render = vfscore.Render
)

// --- Archive helpers ---

// Export writes fsys to w as a zstd-compressed tar stream.
func Export(ctx context.Context, w io.Writer, fsys *FileSystem) error {
	return archive.Export(ctx, w, fsys, archive.ExportWithCompression(archive.CompressionZstd))
}

// Import reads a stream written by Export into a new FileSystem.
func Import(ctx context.Context, r io.Reader, opts ...Option) (*FileSystem, error) {
	fsys := New(opts...)
	if err := archive.Import(ctx, r, fsys); err != nil {
		return nil, err
	}
	return fsys, nil
}
