package report

import (
	"io"

	"github.com/nao1215/urlrisk/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single assessment.
	Write(a *model.Assessment) (int, error)

	// WriteBatch outputs several assessments followed by a tier summary.
	WriteBatch(assessments []model.Assessment) (int, error)

	// WriteAck outputs the acknowledgment of a reported URL.
	WriteAck(ack model.ReportAck) (int, error)
}

// MultiWriter writes to multiple Writers, e.g. terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the assessment to every writer and stops on the first error.
func (m *MultiWriter) Write(a *model.Assessment) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.Write(a) })
}

// WriteBatch outputs the assessments to every writer.
func (m *MultiWriter) WriteBatch(assessments []model.Assessment) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteBatch(assessments) })
}

// WriteAck outputs the acknowledgment to every writer.
func (m *MultiWriter) WriteAck(ack model.ReportAck) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteAck(ack) })
}

func (m *MultiWriter) each(fn func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := fn(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
