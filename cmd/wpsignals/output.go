package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/wpsignals"
	"gopkg.in/yaml.v3"
)

// Stdout formats.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatText   = "text"
	FormatYAML   = "yaml"
)

var _ wpsignals.ReportWriter = (*StdoutWriter)(nil)

// StdoutWriter prints reports to a stream as JSON lines, indented JSON,
// YAML documents or the text summary.
type StdoutWriter struct {
	mu     sync.Mutex
	w      io.Writer
	format string
}

// NewStdoutWriter creates a writer for format. Unknown formats print JSON
// lines.
func NewStdoutWriter(w io.Writer, format string) *StdoutWriter {
	return &StdoutWriter{w: w, format: format}
}

// WriteReport prints report.
func (s *StdoutWriter) WriteReport(ctx context.Context, report *wpsignals.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case FormatText:
		_, err := fmt.Fprintln(s.w, wpsignals.FormatReport(report))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintf(s.w, "---\n%s", data)
		return err
	}

	enc := json.NewEncoder(s.w)
	enc.SetEscapeHTML(false)
	if s.format == FormatPretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
