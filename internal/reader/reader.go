package reader

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/csvq/internal/query"
)

// Source reads a whole file into a dataset
type Source interface {
	ReadAll() (*query.Dataset, error)
	Close() error
}

// Open returns the Source matching the file extension
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return NewParquetReader(path)
	}
	return NewCSVReader(path)
}

// Load opens path, reads every row and closes the file on all paths
func Load(path string) (ds *query.Dataset, err error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			ds, err = nil, errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	return src.ReadAll()
}
