package vfs

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"

	"github.com/meigma/vfs/core/internal/fstype"
	"github.com/meigma/vfs/core/internal/pathutil"
)

// Re-export types from internal/fstype for public API.
type (
	// Kind identifies the type of an entity.
	Kind = fstype.Kind
)

// Re-export kind constants.
const (
	KindRoot   = fstype.KindRoot
	KindDrive  = fstype.KindDrive
	KindFolder = fstype.KindFolder
	KindZip    = fstype.KindZip
	KindText   = fstype.KindText
)

// ParseKind maps "drive", "folder", "zip" or "text" to its Kind.
// Any other string, including "root", returns ErrInvalidKind.
var ParseKind = fstype.ParseKind

// Entity is one node of a Tree.
//
// Accessors are not synchronized. When a Tree is shared between goroutines,
// read entity state through [Tree.Stat] or [Tree.Walk] instead.
type Entity struct {
	id      uuid.UUID
	kind    Kind
	name    string
	path    string
	size    int64
	sum     int64 // containers: total of the children's sizes before zip halving
	content string

	parent   *Entity // nil for the root and for detached entities
	children map[string]*Entity
	order    []string // child names in insertion order
}

func newEntity(kind Kind, name, path string) *Entity {
	e := &Entity{
		id:   uuid.New(),
		kind: kind,
		name: name,
		path: path,
	}
	if kind.IsContainer() {
		e.children = make(map[string]*Entity)
	}
	return e
}

// ID returns the identifier assigned when the entity was created.
func (e *Entity) ID() uuid.UUID { return e.id }

// Kind returns the entity kind.
func (e *Entity) Kind() Kind { return e.kind }

// Name returns the entity name, unique among its siblings.
func (e *Entity) Name() string { return e.name }

// Path returns the separator-joined names from the drive down to the entity.
// The root's path is empty.
func (e *Entity) Path() string { return e.path }

// Size returns the cached size the entity reports to its parent.
func (e *Entity) Size() int64 { return e.size }

// Parent returns the containing entity, or nil for the root.
func (e *Entity) Parent() *Entity { return e.parent }

// IsContainer reports whether the entity can hold children.
func (e *Entity) IsContainer() bool { return e.kind.IsContainer() }

// Content returns the content of a text entity, or "" for containers.
func (e *Entity) Content() string { return e.content }

// Digest returns the sha256 digest of a text entity's content.
// Containers have no digest.
func (e *Entity) Digest() digest.Digest {
	if e.kind != KindText {
		return ""
	}
	return digest.FromString(e.content)
}

// Len returns the number of direct children.
func (e *Entity) Len() int { return len(e.order) }

// Child returns the direct child with the given name.
func (e *Entity) Child(name string) (*Entity, bool) {
	c, ok := e.children[name]
	return c, ok
}

// ChildNames returns the names of the direct children in insertion order.
func (e *Entity) ChildNames() []string {
	return slices.Clone(e.order)
}

// Children returns an iterator over the direct children in insertion order.
func (e *Entity) Children() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, name := range e.order {
			if !yield(e.children[name]) {
				return
			}
		}
	}
}

// addChild inserts child under e.
func (e *Entity) addChild(child *Entity) error {
	if !e.IsContainer() {
		return fstype.ErrInvalidChildKind
	}
	if _, ok := e.children[child.name]; ok {
		return fstype.ErrDuplicateName
	}
	if !e.kind.Allows(child.kind) {
		return fstype.ErrInvalidChildKind
	}
	e.children[child.name] = child
	e.order = append(e.order, child.name)
	child.parent = e
	return nil
}

// removeChild detaches and returns the named child.
func (e *Entity) removeChild(name string) (*Entity, error) {
	child, ok := e.children[name]
	if !ok {
		return nil, fstype.ErrNotFound
	}
	delete(e.children, name)
	e.order = slices.DeleteFunc(e.order, func(n string) bool { return n == name })
	child.parent = nil
	return child, nil
}

// setPath sets e's path and re-derives the paths of all descendants.
func (e *Entity) setPath(p string) {
	e.path = p
	for _, name := range e.order {
		e.children[name].setPath(pathutil.Child(p, name))
	}
}

// setContent replaces a text entity's content and returns the size change.
func (e *Entity) setContent(content string) int64 {
	n := contentSize(content)
	delta := n - e.size
	e.content = content
	e.size = n
	return delta
}

// contentSize measures text content in characters.
func contentSize(content string) int64 {
	return int64(utf8.RuneCountInString(content))
}
