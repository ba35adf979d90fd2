package reader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/csvq/internal/query"
)

const utf8BOM = "\ufeff"

// CSVReader reads a CSV file with a header row.
//
// It keeps the OS file handle and the optional decompression stream so that
// Close can release both.
type CSVReader struct {
	path   string
	file   *os.File
	stream io.ReadCloser
	csv    *csv.Reader
}

// NewCSVReader opens a CSV file, transparently decompressing .gz and .zst.
//
// Returns the *os.PathError unchanged when the file cannot be opened.
func NewCSVReader(path string) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stream, err := decompress(path, file)
	if err != nil {
		file.Close()
		return nil, err
	}

	var src io.Reader = file
	if stream != nil {
		src = stream
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	return &CSVReader{
		path:   path,
		file:   file,
		stream: stream,
		csv:    r,
	}, nil
}

// ReadAll reads every record into memory.
//
// The first record is the header. Short records are padded with empty
// strings and extra fields are dropped.
func (r *CSVReader) ReadAll() (*query.Dataset, error) {
	header, err := r.csv.Read()
	if err == io.EOF {
		return query.NewDataset(nil, []query.Row{}), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read header of %s", r.path)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	columns := make([]string, len(header))
	copy(columns, header)

	rows := make([]query.Row, 0)
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", r.path)
		}

		row := make(query.Row, len(columns))
		for i, col := range columns {
			field := ""
			if i < len(record) {
				field = record[i]
			}
			row[col] = query.Coerce(field)
		}
		rows = append(rows, row)
	}

	return query.NewDataset(columns, rows), nil
}

// Close releases the decompression stream and the file.
// It is safe to call Close multiple times.
func (r *CSVReader) Close() error {
	var streamErr error
	if r.stream != nil {
		streamErr = r.stream.Close()
		r.stream = nil
	}
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		if err != nil {
			return err
		}
	}
	return streamErr
}
