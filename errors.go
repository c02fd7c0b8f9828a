package vfs

import (
	"github.com/meigma/vfs/archive"
	vfscore "github.com/meigma/vfs/core"
)

// Errors re-exported from core.
var (
	// ErrPathNotFound is returned when a path segment does not resolve to a child.
	ErrPathNotFound = vfscore.ErrPathNotFound

	// ErrNotFound is returned when a container has no child with the given name.
	ErrNotFound = vfscore.ErrNotFound

	// ErrDuplicateName is returned when a container already holds a child with the name.
	ErrDuplicateName = vfscore.ErrDuplicateName

	// ErrInvalidChildKind is returned when a container may not hold the child's kind.
	ErrInvalidChildKind = vfscore.ErrInvalidChildKind

	// ErrInvalidKind is returned for an unrecognised entity kind name.
	ErrInvalidKind = vfscore.ErrInvalidKind

	// ErrNotATextFile is returned when content access targets a non-text entity.
	ErrNotATextFile = vfscore.ErrNotATextFile

	// ErrInvalidName is returned for names that cannot be addressed by a path.
	ErrInvalidName = vfscore.ErrInvalidName

	// ErrRootOperation is returned when deleting or moving the root.
	ErrRootOperation = vfscore.ErrRootOperation

	// ErrCycle is returned when an entity would be moved into its own subtree.
	ErrCycle = vfscore.ErrCycle

	// ErrContentTooLarge is returned when written content exceeds WithMaxContentSize.
	ErrContentTooLarge = vfscore.ErrContentTooLarge

	// ErrTooManyEntities is returned when a create would exceed WithMaxEntities.
	ErrTooManyEntities = vfscore.ErrTooManyEntities
)

// Errors re-exported from archive.
var (
	// ErrDigestMismatch is returned when imported content does not match its recorded digest.
	ErrDigestMismatch = archive.ErrDigestMismatch

	// ErrInvalidArchive is returned when a stream is not a well-formed tree archive.
	ErrInvalidArchive = archive.ErrInvalidArchive

	// ErrSizeOverflow is returned when an imported file exceeds the size limit.
	ErrSizeOverflow = archive.ErrSizeOverflow

	// ErrDecompression is returned when a zstd stream cannot be decoded.
	ErrDecompression = archive.ErrDecompression
)
