package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wpsignals"
)

// Ensure LoggingAnalyzer implements wpsignals.Analyzer.
var _ wpsignals.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   wpsignals.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next wpsignals.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the detected theme and
// script count.
func (a *LoggingAnalyzer) Analyze(html string, pageURL string) (report *wpsignals.Report, err error) {
	defer func(begin time.Time) {
		theme, scripts := "", 0
		if report != nil {
			if t := report.CMS.WordPress.Theme.Theme; t != nil {
				theme = *t
			}
			scripts = len(report.CMS.WordPress.Scripts)
		}
		a.logger.Info("analyze",
			"url", pageURL,
			"bytes", len(html),
			"theme", theme,
			"scripts", scripts,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(html, pageURL)
}
