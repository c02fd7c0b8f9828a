package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	vfs "github.com/meigma/vfs/core"
)

// PAX record keys.
const (
	paxKind   = "VFS.kind"
	paxPath   = "VFS.path"
	paxDigest = "VFS.digest"
)

// epoch is the modification time stamped on every entry, keeping exports of
// equal trees byte-identical.
var epoch = time.Unix(0, 0)

// Export writes every entity of t below the root to w as a tar stream.
//
// The tree is snapshotted before anything is written, so concurrent
// mutations do not tear the output. The context is checked between entries.
func Export(ctx context.Context, w io.Writer, t *vfs.Tree, opts ...ExportOption) error {
	cfg := exportConfig{level: zstd.SpeedDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logOrDiscard(cfg.logger)

	entries, err := t.Walk("")
	if err != nil {
		return err
	}

	out := w
	var enc *zstd.Encoder
	if cfg.compression == CompressionZstd {
		enc, err = zstd.NewWriter(w, zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(cfg.level))
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		out = enc
	}

	log.Info("exporting tree", "compression", cfg.compression.String())
	tw := tar.NewWriter(out)
	count, err := writeEntries(ctx, tw, entries)
	if err != nil {
		if enc != nil {
			_ = enc.Close()
		}
		return err
	}
	if err := tw.Close(); err != nil {
		return err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close zstd encoder: %w", err)
		}
	}
	log.Info("tree exported", "entities", count)
	return nil
}

func writeEntries(ctx context.Context, tw *tar.Writer, entries iter.Seq[vfs.Info]) (int, error) {
	count := 0
	for info := range entries {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if info.Kind == vfs.KindRoot {
			continue
		}
		if err := tw.WriteHeader(header(info)); err != nil {
			return count, fmt.Errorf("write header %q: %w", info.Path, err)
		}
		if info.Kind == vfs.KindText {
			if _, err := io.WriteString(tw, info.Content); err != nil {
				return count, fmt.Errorf("write content %q: %w", info.Path, err)
			}
		}
		count++
	}
	return count, nil
}

// header builds the tar header for one entity.
func header(info vfs.Info) *tar.Header {
	hdr := &tar.Header{
		Name:    strings.ReplaceAll(info.Path, vfs.Separator, "/"),
		ModTime: epoch,
		Format:  tar.FormatPAX,
		PAXRecords: map[string]string{
			paxKind: info.Kind.String(),
			paxPath: info.Path,
		},
	}
	if info.Kind == vfs.KindText {
		hdr.Typeflag = tar.TypeReg
		hdr.Mode = 0o644
		hdr.Size = int64(len(info.Content))
		hdr.PAXRecords[paxDigest] = info.Digest.String()
		return hdr
	}
	hdr.Typeflag = tar.TypeDir
	hdr.Mode = 0o755
	hdr.Name += "/"
	return hdr
}
