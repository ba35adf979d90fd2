package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// NoDataMessage is shown, as both header and single cell, for an empty result
const NoDataMessage = "No data found"

// TableFormatter outputs rows as a bordered grid table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes rows as a grid. Numeric columns are right aligned and
// string columns left aligned. No rows renders the "No data found" table.
func (f *TableFormatter) Format(columns []string, rows []map[string]interface{}) error {
	table := newGrid(f.writer)

	if len(rows) == 0 {
		table.SetHeader([]string{NoDataMessage})
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
		table.Append([]string{NoDataMessage})
		table.Render()
		return nil
	}

	table.SetHeader(columns)
	table.SetColumnAlignment(columnAlignments(columns, rows))
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}
	table.Render()

	return nil
}

func newGrid(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	return table
}

// columnAlignments right-aligns columns whose values are all numeric
func columnAlignments(columns []string, rows []map[string]interface{}) []int {
	aligns := make([]int, len(columns))
	for i, col := range columns {
		aligns[i] = tablewriter.ALIGN_RIGHT
		for _, row := range rows {
			if !isNumeric(row[col]) {
				aligns[i] = tablewriter.ALIGN_LEFT
				break
			}
		}
	}
	return aligns
}
