package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/urlrisk/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
//
// Design decision: We use standard encoding/json because the views are
// plain structs with tags and the HTTP API must produce byte-identical
// documents; no library in use offers anything on top of that.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented JSON.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs a single assessment view.
func (w *JSONWriter) Write(a *model.Assessment) (int, error) {
	return w.writeJSON(NewView(a))
}

// WriteBatch outputs the batch view.
func (w *JSONWriter) WriteBatch(assessments []model.Assessment) (int, error) {
	return w.writeJSON(NewBatchView(assessments))
}

// WriteAck outputs the acknowledgment.
func (w *JSONWriter) WriteAck(ack model.ReportAck) (int, error) {
	return w.writeJSON(ack)
}

// writeJSON marshals v and writes it with a trailing newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
