package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
)

// ExtractSignals runs every extractor against doc and assembles the result.
// pageURL is the address the document was loaded from; it may be nil.
// The extractors are independent, so a missing signal in one never affects
// another.
func ExtractSignals(doc *goquery.Document, pageURL *url.URL) wpsignals.Signals {
	return wpsignals.Signals{
		Theme:                 Theme(doc),
		BlockTheme:            UsesBlockTheme(doc),
		HasEmbedBlock:         HasEmbedBlock(doc),
		EmbedBlockCount:       EmbedBlockCount(doc),
		Scripts:               Scripts(doc, DocumentBase(doc, pageURL)),
		ContentType:           ContentTypeOf(doc),
		UsesInteractivityAPI:  UsesInteractivityAPI(doc),
		InteractivityAPIUsage: InteractivityAPIUsage(doc),
	}
}

// DocumentBase returns the base URL used to resolve relative URLs in doc:
// the first <base href> resolved against pageURL, or pageURL itself.
// It returns nil when neither yields an absolute URL.
func DocumentBase(doc *goquery.Document, pageURL *url.URL) *url.URL {
	if pageURL != nil && !pageURL.IsAbs() {
		pageURL = nil
	}

	s := findAll(doc, baseMatcher).First()
	if s.Length() == 0 {
		return pageURL
	}

	href, err := url.Parse(strings.TrimSpace(s.AttrOr("href", "")))
	if err != nil {
		return pageURL
	}
	if pageURL != nil {
		return pageURL.ResolveReference(href)
	}
	if href.IsAbs() {
		return href
	}
	return nil
}
