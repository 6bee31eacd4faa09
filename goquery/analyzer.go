package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wpsignals"
)

// Ensure Analyzer implements wpsignals.Analyzer at compile time.
var _ wpsignals.Analyzer = (*Analyzer)(nil)

// Analyzer parses HTML once and produces a report holding the WordPress
// signals and the doctype of the page.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze parses html and extracts its signals.
func (a *Analyzer) Analyze(html string, pageURL string) (*wpsignals.Report, error) {
	var page *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, wpsignals.Errorf(wpsignals.EINVALID, "invalid page URL: %v", err)
		}
		page = u
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wpsignals.Errorf(wpsignals.EINVALID, "failed to parse HTML: %v", err)
	}

	return &wpsignals.Report{
		URL:         pageURL,
		Doctype:     Doctype(doc),
		ContentHash: ComputeHash(html),
		CMS: wpsignals.CMS{
			WordPress: ExtractSignals(doc, page),
		},
	}, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
