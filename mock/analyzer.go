package mock

import "github.com/fwojciec/wpsignals"

var _ wpsignals.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of wpsignals.Analyzer.
type Analyzer struct {
	AnalyzeFn func(html string, pageURL string) (*wpsignals.Report, error)
}

func (a *Analyzer) Analyze(html string, pageURL string) (*wpsignals.Report, error) {
	return a.AnalyzeFn(html, pageURL)
}
