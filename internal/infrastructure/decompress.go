package infrastructure

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Francouer/repo-sync/internal/domain"
)

// FileDecompressor expands gzip or bzip2 files by extension and copies
// anything else through verbatim.
type FileDecompressor struct{}

// NewFileDecompressor creates a new file decompressor
func NewFileDecompressor() domain.Decompressor {
	return &FileDecompressor{}
}

func (d *FileDecompressor) Decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	var reader io.Reader = in
	switch {
	case strings.HasSuffix(src, ".gz"):
		gz, err := gzip.NewReader(in)
		if err != nil {
			return fmt.Errorf("failed to read gzip stream from %s: %w", src, err)
		}
		defer gz.Close()
		reader = gz
	case strings.HasSuffix(src, ".bz2"):
		reader = bzip2.NewReader(in)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("failed to decompress %s to %s: %w", src, dst, err)
	}
	return out.Sync()
}
