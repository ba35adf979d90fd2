package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// decompress wraps r in a decoder chosen by the file extension.
// It returns nil for uncompressed files.
func decompress(path string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open gzip stream %s", path)
		}
		return zr, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open zstd stream %s", path)
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, nil
	}
}
