package output

import (
	"bufio"
	"io"
	"strings"
)

// TabWriter writes records in tab-delimited format. Columns are fixed to
// the keys of the first record written; missing fields render as "-".
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record, emitting the header line first if this is
// the first record.
func (tw *TabWriter) Write(rec *Record) error {
	if tw.columns == nil {
		tw.columns = rec.Keys()
		if _, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n"); err != nil {
			return err
		}
	}
	row := make([]string, len(tw.columns))
	for i, col := range tw.columns {
		val := rec.Get(col)
		if val == "" {
			val = "-"
		}
		row[i] = val
	}
	_, err := tw.w.WriteString(strings.Join(row, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
