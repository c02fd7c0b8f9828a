package vfs

import "github.com/meigma/vfs/core/internal/fstype"

// Sentinel errors re-exported from internal/fstype.
//
// Tree operations wrap them in an *fs.PathError naming the operation and the
// offending path; match them with errors.Is.
var (
	// ErrPathNotFound is returned when a path segment does not resolve to a child.
	ErrPathNotFound = fstype.ErrPathNotFound

	// ErrNotFound is returned when a container has no child with the given name.
	ErrNotFound = fstype.ErrNotFound

	// ErrDuplicateName is returned when a container already holds a child with the name.
	ErrDuplicateName = fstype.ErrDuplicateName

	// ErrInvalidChildKind is returned when a container may not hold the child's kind.
	ErrInvalidChildKind = fstype.ErrInvalidChildKind

	// ErrInvalidKind is returned for an unrecognised entity kind name.
	ErrInvalidKind = fstype.ErrInvalidKind

	// ErrNotATextFile is returned when content access targets a non-text entity.
	ErrNotATextFile = fstype.ErrNotATextFile

	// ErrInvalidName is returned for names that cannot be addressed by a path.
	ErrInvalidName = fstype.ErrInvalidName

	// ErrRootOperation is returned when deleting or moving the root.
	ErrRootOperation = fstype.ErrRootOperation

	// ErrCycle is returned when an entity would be moved into its own subtree.
	ErrCycle = fstype.ErrCycle

	// ErrContentTooLarge is returned when written content exceeds WithMaxContentSize.
	ErrContentTooLarge = fstype.ErrContentTooLarge

	// ErrTooManyEntities is returned when a create would exceed WithMaxEntities.
	ErrTooManyEntities = fstype.ErrTooManyEntities
)
