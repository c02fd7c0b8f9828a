package vfs

import (
	"io/fs"
	"iter"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
)

// Info is a point-in-time copy of an entity's state.
//
// Unlike *Entity, an Info is safe to keep and read while the tree changes.
type Info struct {
	ID      uuid.UUID
	Kind    Kind
	Name    string
	Path    string
	Size    int64
	Content string        // text only
	Digest  digest.Digest // text only
}

// InfoOf returns a snapshot of e.
func InfoOf(e *Entity) Info {
	return Info{
		ID:      e.id,
		Kind:    e.kind,
		Name:    e.name,
		Path:    e.path,
		Size:    e.size,
		Content: e.content,
		Digest:  e.Digest(),
	}
}

// Stat returns a snapshot of the entity at path.
func (t *Tree) Stat(path string) (Info, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, err := t.resolve(path)
	if err != nil {
		return Info{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return InfoOf(e), nil
}

// Walk snapshots the subtree at path and returns an iterator over it,
// visiting each entity before its children and children in insertion order.
//
// The snapshot is taken before Walk returns; later mutations are not observed.
func (t *Tree) Walk(path string) (iter.Seq[Info], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, err := t.resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "walk", Path: path, Err: err}
	}
	infos := collect(nil, e)
	return func(yield func(Info) bool) {
		for _, info := range infos {
			if !yield(info) {
				return
			}
		}
	}, nil
}

func collect(infos []Info, e *Entity) []Info {
	infos = append(infos, InfoOf(e))
	for c := range e.Children() {
		infos = collect(infos, c)
	}
	return infos
}
