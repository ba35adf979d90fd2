// Package reader loads tabular files into a query.Dataset.
//
// CSV is the primary input. Files ending in .gz or .zst are decompressed on
// the fly, and files ending in .parquet are read with segmentio/parquet-go.
//
// # Basic Usage
//
// Load opens, reads and closes a file in one call:
//
//	ds, err := reader.Load("phones.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For finer control, open a Source and close it yourself:
//
//	src, err := reader.Open("phones.csv.gz")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	ds, err := src.ReadAll()
//
// # Value Coercion
//
// CSV fields become float64 when they parse as a number and stay strings
// otherwise. Parquet values keep their physical type: numbers become float64,
// everything else is rendered as a string.
//
// A file that cannot be opened returns the *os.PathError from the operating
// system unchanged.
package reader
