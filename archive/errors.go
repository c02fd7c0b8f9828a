package archive

import "errors"

// Sentinel errors for archive operations.
var (
	// ErrDigestMismatch is returned when imported content does not match its recorded digest.
	ErrDigestMismatch = errors.New("archive: digest mismatch")

	// ErrInvalidArchive is returned when a stream is not a well-formed tree archive.
	ErrInvalidArchive = errors.New("archive: invalid archive")

	// ErrSizeOverflow is returned when a file's content exceeds the import limit.
	ErrSizeOverflow = errors.New("archive: size overflow")

	// ErrDecompression is returned when a zstd stream cannot be decoded.
	ErrDecompression = errors.New("archive: decompression failed")
)
