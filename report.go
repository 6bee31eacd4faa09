package wpsignals

import "context"

// Report is the result of analyzing one page.
type Report struct {
	URL         string `json:"url" yaml:"url"`
	Doctype     string `json:"doctype" yaml:"doctype"`
	ContentHash string `json:"content_hash" yaml:"content_hash"`
	CMS         CMS    `json:"cms" yaml:"cms"`
}

// CMS groups signals by content management system.
type CMS struct {
	WordPress Signals `json:"wordpress" yaml:"wordpress"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "report URL required")
	}
	return nil
}

// Analyzer inspects HTML and produces a Report.
type Analyzer interface {
	// Analyze parses html and extracts its signals. pageURL identifies the
	// page and is used to resolve relative script URLs; it may be empty.
	// Missing signals never cause an error; only unparseable input does.
	Analyze(html string, pageURL string) (*Report, error)
}

// ReportWriter persists or prints reports.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}
