package archive

import (
	"log/slog"

	"github.com/klauspost/compress/zstd"
)

// DefaultMaxFileSize is the default per-file content limit used by Import.
const DefaultMaxFileSize = 64 << 20

// DefaultMaxDecoderMemory is the default memory limit for the zstd decoder.
const DefaultMaxDecoderMemory = 256 << 20

type exportConfig struct {
	compression Compression
	level       zstd.EncoderLevel
	logger      *slog.Logger
}

// ExportOption configures Export.
type ExportOption func(*exportConfig)

// ExportWithCompression sets the compression applied to the whole stream.
// Use CompressionNone for a plain tar stream, CompressionZstd for zstd.
func ExportWithCompression(c Compression) ExportOption {
	return func(cfg *exportConfig) {
		cfg.compression = c
	}
}

// ExportWithEncoderLevel sets the zstd encoder level (default: zstd.SpeedDefault).
func ExportWithEncoderLevel(level zstd.EncoderLevel) ExportOption {
	return func(cfg *exportConfig) {
		cfg.level = level
	}
}

// ExportWithLogger sets the logger for export progress.
func ExportWithLogger(logger *slog.Logger) ExportOption {
	return func(cfg *exportConfig) {
		cfg.logger = logger
	}
}

type importConfig struct {
	maxFileSize      uint64
	maxDecoderMemory uint64
	logger           *slog.Logger
}

// ImportOption configures Import.
type ImportOption func(*importConfig)

// ImportWithMaxFileSize limits the content size of each imported text file in bytes.
// Set limit to 0 to disable the limit.
func ImportWithMaxFileSize(limit uint64) ImportOption {
	return func(cfg *importConfig) {
		cfg.maxFileSize = limit
	}
}

// ImportWithMaxDecoderMemory limits the memory used by the zstd decoder.
// Set limit to 0 to disable the limit.
func ImportWithMaxDecoderMemory(limit uint64) ImportOption {
	return func(cfg *importConfig) {
		cfg.maxDecoderMemory = limit
	}
}

// ImportWithLogger sets the logger for import progress.
func ImportWithLogger(logger *slog.Logger) ImportOption {
	return func(cfg *importConfig) {
		cfg.logger = logger
	}
}

// logOrDiscard returns logger, falling back to a discard logger if nil.
func logOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
