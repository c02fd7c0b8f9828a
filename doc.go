// Package vfs provides an in-memory virtual file system whose zip containers
// report half the size of their contents.
//
// This package re-exports the tree engine from the [core] subpackage and adds
// archive export and import helpers. For archive options beyond the defaults,
// use the [archive] subpackage directly.
//
// # Quick Start
//
// Build a tree and read back sizes:
//
//	fsys := vfs.New()
//	if _, err := fsys.Create("drive", "A", ""); err != nil {
//	    return err
//	}
//	if _, err := fsys.Create("zip", "z", "A"); err != nil {
//	    return err
//	}
//	if _, err := fsys.Create("text", "t", `A\z`); err != nil {
//	    return err
//	}
//	if err := fsys.WriteToFile(`A\z\t`, "teststring"); err != nil {
//	    return err
//	}
//	info, _ := fsys.Stat("A") // info.Size == 5
//
// # Paths
//
// Paths are backslash-separated names starting at a drive. The empty string,
// a path of only separators and "root" address the root. Names may not be
// empty, contain a backslash, or equal "root".
//
// # Errors
//
// Operations return an *fs.PathError wrapping one of the sentinel errors;
// use errors.Is to match them.
package vfs
