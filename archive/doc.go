// Package archive exports trees to tar streams and imports them back.
//
// Every entity below the root becomes one tar entry in pre-order: containers
// as directories and text files as regular files. PAX records carry what tar
// cannot express:
//
//   - VFS.kind: the entity kind ("drive", "folder", "zip" or "text")
//   - VFS.path: the backslash-separated tree path
//   - VFS.digest: the sha256 digest of a text file's content
//
// Streams may be zstd-compressed; Import detects compression on its own.
package archive
