package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"

	vfs "github.com/meigma/vfs/core"
	"github.com/meigma/vfs/internal/sizing"
)

// Import reads a stream written by Export and recreates its entities in t.
//
// Entities are created through the tree's own operations, so every
// containment, naming and size rule applies; importing over existing names
// fails with vfs.ErrDuplicateName. Import is not atomic: on error t keeps the
// entities imported before the failing entry.
//
// Entries without VFS records are accepted from plain tar streams:
// top-level directories become drives, other directories folders, and regular
// files text.
func Import(ctx context.Context, r io.Reader, t *vfs.Tree, opts ...ImportOption) error {
	cfg := importConfig{
		maxFileSize:      DefaultMaxFileSize,
		maxDecoderMemory: DefaultMaxDecoderMemory,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logOrDiscard(cfg.logger)

	br := bufio.NewReader(r)
	src := io.Reader(br)
	compression := CompressionNone
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		decOpts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
		if cfg.maxDecoderMemory > 0 {
			decOpts = append(decOpts, zstd.WithDecoderMaxMemory(cfg.maxDecoderMemory))
		}
		dec, err := zstd.NewReader(br, decOpts...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		defer dec.Close()
		src = dec
		compression = CompressionZstd
	}

	log.Info("importing tree", "compression", compression.String())
	tr := tar.NewReader(src)
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if compression == CompressionZstd && !errors.Is(err, tar.ErrHeader) {
				return fmt.Errorf("%w: %w", ErrDecompression, err)
			}
			return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
		}
		if err := importEntry(t, tr, hdr, cfg); err != nil {
			return err
		}
		count++
	}
	log.Info("tree imported", "entities", count)
	return nil
}

// importEntry creates the entity described by hdr and, for text, fills its content.
func importEntry(t *vfs.Tree, tr *tar.Reader, hdr *tar.Header, cfg importConfig) error {
	p := hdr.PAXRecords[paxPath]
	if p == "" {
		p = strings.ReplaceAll(strings.Trim(hdr.Name, "/"), "/", vfs.Separator)
	}
	parent, name := vfs.SplitParent(p)
	if name == "" {
		return fmt.Errorf("%w: entry %q has no name", ErrInvalidArchive, hdr.Name)
	}

	kind := hdr.PAXRecords[paxKind]
	if kind == "" {
		kind = inferKind(hdr, parent)
	}
	if kind == "" {
		return fmt.Errorf("%w: unsupported entry type %q for %q", ErrInvalidArchive, hdr.Typeflag, hdr.Name)
	}
	if _, err := t.Create(kind, name, parent); err != nil {
		return err
	}
	if kind != vfs.KindText.String() {
		return nil
	}

	limit := cfg.maxFileSize
	if limit == 0 {
		limit = math.MaxInt - 1
	}
	data, err := sizing.ReadAllWithLimit(tr, limit, ErrSizeOverflow)
	if err != nil {
		if errors.Is(err, ErrSizeOverflow) {
			return fmt.Errorf("%w: %q", ErrSizeOverflow, p)
		}
		return fmt.Errorf("%w: read %q: %w", ErrInvalidArchive, p, err)
	}
	if want := hdr.PAXRecords[paxDigest]; want != "" {
		if err := verify(want, data); err != nil {
			return fmt.Errorf("%w: %q", err, p)
		}
	}
	return t.WriteToFile(p, string(data))
}

func inferKind(hdr *tar.Header, parent string) string {
	switch hdr.Typeflag {
	case tar.TypeDir:
		if parent == "" {
			return vfs.KindDrive.String()
		}
		return vfs.KindFolder.String()
	case tar.TypeReg:
		return vfs.KindText.String()
	default:
		return ""
	}
}

// verify checks data against a recorded digest string.
func verify(recorded string, data []byte) error {
	want, err := digest.Parse(recorded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}
	if !want.Algorithm().Available() {
		return fmt.Errorf("%w: unsupported digest algorithm %s", ErrInvalidArchive, want.Algorithm())
	}
	if want.Algorithm().FromBytes(data) != want {
		return ErrDigestMismatch
	}
	return nil
}
