package vfs

import "github.com/meigma/vfs/internal/sizing"

// propagate applies a change of delta in the size reported by one of start's
// children, then walks outward through the ancestors.
//
// Each container keeps the raw total of its children's sizes. A zip reports
// half of that total rounded up, so what moves outward from a zip is the change
// in its halved size, not a halved copy of the incoming delta. The root
// caches nothing.
func (t *Tree) propagate(start *Entity, delta int64) {
	for e := start; e != nil && e.kind != KindRoot && delta != 0; e = e.parent {
		e.sum += delta
		reported := sizing.Reported(e.kind == KindZip, e.sum)
		delta = reported - e.size
		e.size = reported
	}
}
