package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Doctype returns the document's doctype declaration as its name, public
// identifier and system identifier joined by single spaces, with control
// and Latin-1 high characters removed. It returns an empty string when the
// document has no doctype.
func Doctype(doc *goquery.Document) string {
	root := rootNode(doc)
	if root == nil {
		return ""
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			return SanitizeDoctype(formatDoctype(c))
		}
	}
	return ""
}

func formatDoctype(n *html.Node) string {
	parts := []string{n.Data}
	for _, key := range []string{"public", "system"} {
		if v, ok := attr(n, key); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// SanitizeDoctype removes U+0000 through U+001F and U+0080 through U+00FF.
func SanitizeDoctype(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x80 && r <= 0xFF) {
			return -1
		}
		return r
	}, s)
}
