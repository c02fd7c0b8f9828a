// Package vfs implements an in-memory, single-root virtual file system.
//
// A [Tree] holds one root entity. The root may only contain drives; drives,
// folders and zips may contain folders, zips and text files; text files hold
// opaque string content and contain nothing.
//
// Every entity caches a size. A text file's size is the length of its content
// in characters, a drive or folder reports the sum of its children's sizes, and
// a zip reports half of that sum rounded up. Mutations keep every cached size
// consistent by walking from the mutated entity's parent up to the root.
//
// Paths are backslash-separated names starting at a drive, for example
// `DriveA\Docs\notes`. The empty path, a path of only separators and the
// alias "root" all address the root.
package vfs
