package vfs

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/meigma/vfs/core/internal/pathutil"
)

// Tree is an in-memory file system rooted at a single root entity.
//
// All methods are safe for concurrent use: mutations hold an exclusive lock
// and lookups a shared one. Entities returned by Create and Lookup alias the
// tree and must not be read while another goroutine mutates it.
type Tree struct {
	mu             sync.RWMutex
	root           *Entity
	byID           map[uuid.UUID]*Entity // includes the root
	maxContentSize int64
	maxEntities    int
	logger         *slog.Logger
}

// New creates an empty Tree holding only the root.
func New(opts ...Option) *Tree {
	root := newEntity(KindRoot, RootAlias, "")
	t := &Tree{
		root: root,
		byID: map[uuid.UUID]*Entity{root.id: root},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// log returns the logger, falling back to a discard logger if nil.
func (t *Tree) log() *slog.Logger {
	if t.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.logger
}

// Root returns the root entity.
func (t *Tree) Root() *Entity {
	return t.root
}

// Len returns the number of entities below the root.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID) - 1
}

// Create adds a new, empty entity of the named kind under the entity at parentPath.
//
// kind is one of "drive", "folder", "zip" or "text". The root forms of
// parentPath ("", `\`, "root") address the root, which only accepts drives.
func (t *Tree) Create(kind, name, parentPath string) (*Entity, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	parent, err := t.resolve(parentPath)
	if err != nil {
		return nil, &fs.PathError{Op: "create", Path: parentPath, Err: err}
	}
	p := pathutil.Child(parent.path, name)
	if !pathutil.ValidName(name) {
		return nil, &fs.PathError{Op: "create", Path: p, Err: ErrInvalidName}
	}
	if _, exists := parent.Child(name); exists {
		return nil, &fs.PathError{Op: "create", Path: p, Err: ErrDuplicateName}
	}
	k, err := ParseKind(kind)
	if err != nil {
		return nil, &fs.PathError{Op: "create", Path: p, Err: err}
	}
	if t.maxEntities > 0 && len(t.byID)-1 >= t.maxEntities {
		return nil, &fs.PathError{Op: "create", Path: p, Err: ErrTooManyEntities}
	}

	e := newEntity(k, name, p)
	if err := parent.addChild(e); err != nil {
		return nil, &fs.PathError{Op: "create", Path: p, Err: err}
	}
	t.byID[e.id] = e
	t.propagate(parent, 0)

	t.log().Debug("entity created", "path", p, "kind", k.String(), "id", e.id.String())
	return e, nil
}

// Delete removes the entity at path together with its subtree.
func (t *Tree) Delete(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	target, err := t.resolveChild(path)
	if err != nil {
		return &fs.PathError{Op: "delete", Path: path, Err: err}
	}
	parent := target.parent

	// Sizes are settled while the target is still linked.
	t.propagate(parent, -target.size)
	if _, err := parent.removeChild(target.name); err != nil {
		return &fs.PathError{Op: "delete", Path: path, Err: err}
	}
	removed := t.forget(target)

	t.log().Debug("entity deleted", "path", target.path, "size", target.size, "entities", removed)
	return nil
}

// Move reparents the entity at sourcePath under the container at destinationPath,
// keeping its name and its subtree.
//
// Every check runs before the tree is touched, so a failed Move leaves the
// tree unchanged.
func (t *Tree) Move(sourcePath, destinationPath string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	moved, err := t.resolveChild(sourcePath)
	if err != nil {
		return &fs.PathError{Op: "move", Path: sourcePath, Err: err}
	}
	dest, err := t.resolve(destinationPath)
	if err != nil {
		return &fs.PathError{Op: "move", Path: destinationPath, Err: err}
	}
	target := pathutil.Child(dest.path, moved.name)
	if _, exists := dest.Child(moved.name); exists {
		return &fs.PathError{Op: "move", Path: target, Err: ErrDuplicateName}
	}
	if !dest.kind.Allows(moved.kind) {
		return &fs.PathError{Op: "move", Path: target, Err: ErrInvalidChildKind}
	}
	for a := dest; a != nil; a = a.parent {
		if a == moved {
			return &fs.PathError{Op: "move", Path: target, Err: ErrCycle}
		}
	}

	from := moved.path
	src := moved.parent
	size := moved.size
	t.propagate(src, -size)
	t.propagate(dest, size)
	if _, err := src.removeChild(moved.name); err != nil {
		return &fs.PathError{Op: "move", Path: sourcePath, Err: err}
	}
	if err := dest.addChild(moved); err != nil {
		return &fs.PathError{Op: "move", Path: target, Err: err}
	}
	moved.setPath(target)

	t.log().Debug("entity moved", "from", from, "to", target, "size", size)
	return nil
}

// WriteToFile replaces the content of the text file at path.
func (t *Tree) WriteToFile(path, content string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.resolve(path)
	if err != nil {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}
	if f.kind != KindText {
		return &fs.PathError{Op: "write", Path: path, Err: ErrNotATextFile}
	}
	if t.maxContentSize > 0 && contentSize(content) > t.maxContentSize {
		return &fs.PathError{Op: "write", Path: path, Err: ErrContentTooLarge}
	}

	delta := f.setContent(content)
	t.propagate(f.parent, delta)

	t.log().Debug("file written", "path", f.path, "size", f.size, "delta", delta)
	return nil
}

// ReadFile returns the content of the text file at path.
func (t *Tree) ReadFile(path string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, err := t.resolve(path)
	if err != nil {
		return "", &fs.PathError{Op: "read", Path: path, Err: err}
	}
	if f.kind != KindText {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrNotATextFile}
	}
	return f.content, nil
}

// Lookup returns the entity at path. The root forms of path return the root.
func (t *Tree) Lookup(path string) (*Entity, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, err := t.resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "lookup", Path: path, Err: err}
	}
	return e, nil
}

// LookupID returns the entity with the given ID if it is still in the tree.
func (t *Tree) LookupID(id uuid.UUID) (*Entity, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.byID[id]
	return e, ok
}

// Render returns the diagnostic listing of the whole tree, starting with the root.
func (t *Tree) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Render(t.root)
}

// resolve walks path from the root.
func (t *Tree) resolve(path string) (*Entity, error) {
	e := t.root
	for _, name := range pathutil.Segments(path) {
		child, ok := e.Child(name)
		if !ok {
			return nil, ErrPathNotFound
		}
		e = child
	}
	return e, nil
}

// resolveChild resolves a path that must name an entity below the root.
func (t *Tree) resolveChild(path string) (*Entity, error) {
	e, err := t.resolve(path)
	if err != nil {
		return nil, err
	}
	if e == t.root {
		return nil, ErrRootOperation
	}
	return e, nil
}

// forget drops e and its descendants from the ID index and returns how many
// entities were dropped.
func (t *Tree) forget(e *Entity) int {
	delete(t.byID, e.id)
	n := 1
	for c := range e.Children() {
		n += t.forget(c)
	}
	return n
}
