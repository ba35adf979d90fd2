// Package output renders query results.
//
// Three formatters are available:
//   - Table: bordered grid table, the default for terminals
//   - CSV: comma-separated values with a header row
//   - JSON Lines: one JSON object per line
//
// All formatters take the column order explicitly so that the header follows
// the source file rather than map iteration order.
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(ds.Columns, ds.Rows); err != nil {
//	    log.Fatal(err)
//	}
package output
