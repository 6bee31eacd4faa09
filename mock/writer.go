package mock

import (
	"context"

	"github.com/fwojciec/wpsignals"
)

var _ wpsignals.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of wpsignals.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *wpsignals.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *wpsignals.Report) error {
	return w.WriteReportFn(ctx, report)
}
