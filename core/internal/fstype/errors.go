package fstype

import "errors"

// Sentinel errors for tree operations.
var (
	// ErrPathNotFound is returned when a path segment does not resolve to a child.
	ErrPathNotFound = errors.New("vfs: path not found")

	// ErrNotFound is returned when a container has no child with the given name.
	ErrNotFound = errors.New("vfs: entity not found")

	// ErrDuplicateName is returned when a container already holds a child with the name.
	ErrDuplicateName = errors.New("vfs: duplicate name")

	// ErrInvalidChildKind is returned when a container may not hold the child's kind.
	ErrInvalidChildKind = errors.New("vfs: invalid child kind")

	// ErrInvalidKind is returned for an unrecognised entity kind name.
	ErrInvalidKind = errors.New("vfs: invalid entity kind")

	// ErrNotATextFile is returned when content access targets a non-text entity.
	ErrNotATextFile = errors.New("vfs: not a text file")

	// ErrInvalidName is returned for empty names, names containing the path
	// separator, and the reserved root alias.
	ErrInvalidName = errors.New("vfs: invalid name")

	// ErrRootOperation is returned when deleting or moving the root.
	ErrRootOperation = errors.New("vfs: operation not permitted on root")

	// ErrCycle is returned when an entity would be moved into its own subtree.
	ErrCycle = errors.New("vfs: move into own subtree")

	// ErrContentTooLarge is returned when written content exceeds the configured limit.
	ErrContentTooLarge = errors.New("vfs: content too large")

	// ErrTooManyEntities is returned when the entity count would exceed the configured limit.
	ErrTooManyEntities = errors.New("vfs: too many entities")
)
