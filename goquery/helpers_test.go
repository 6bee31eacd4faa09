package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// parse builds a document from an HTML fixture.
func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// body wraps body classes and content in a minimal page.
func body(classes, content string) string {
	return `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body class="` + classes + `">
` + content + `
</body>
</html>`
}
