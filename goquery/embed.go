package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
)

const providerPrefix = "is-provider-"

// HasEmbedBlock reports whether the document contains an embed block.
func HasEmbedBlock(doc *goquery.Document) bool {
	return exists(doc, embedBlockMatcher)
}

// EmbedBlockCount counts embed blocks, including a breakdown by provider.
func EmbedBlockCount(doc *goquery.Document) wpsignals.EmbedSummary {
	summary := wpsignals.NewEmbedSummary()

	findAll(doc, embedBlockMatcher).Each(func(_ int, s *goquery.Selection) {
		summary.Total++

		classes := wpsignals.ParseClassList(s.AttrOr("class", ""))
		if provider, ok := classes.TrimmedWithPrefix(providerPrefix); ok {
			summary.TotalByType[provider]++
		}
	})

	return summary
}
