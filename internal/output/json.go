package output

import (
	"encoding/json"
	"io"
)

// JSONWriter collects records and renders them as a JSON array.
type JSONWriter struct {
	w       io.Writer
	records []*Record
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write queues a single record.
func (jw *JSONWriter) Write(rec *Record) error {
	jw.records = append(jw.records, rec)
	return nil
}

// Flush renders all queued records as an indented JSON array.
func (jw *JSONWriter) Flush() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw.records)
}
