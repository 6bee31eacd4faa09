package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wpsignals"
)

// Ensure LoggingReportWriter implements wpsignals.ReportWriter.
var _ wpsignals.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with debug logging.
type LoggingReportWriter struct {
	next   wpsignals.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next wpsignals.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, report *wpsignals.Report) (err error) {
	defer func(begin time.Time) {
		url := ""
		if report != nil {
			url = report.URL
		}
		w.logger.Info("write report",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, report)
}
