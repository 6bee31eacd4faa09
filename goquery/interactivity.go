package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
)

const interactiveAttr = "data-wp-interactive"

// UsesInteractivityAPI reports whether any Interactivity API region exists.
func UsesInteractivityAPI(doc *goquery.Document) bool {
	return exists(doc, interactiveMatcher)
}

// InteractivityAPIUsage counts Interactivity API regions by namespace.
func InteractivityAPIUsage(doc *goquery.Document) wpsignals.InteractivityUsage {
	usage := wpsignals.NewInteractivityUsage()

	findAll(doc, interactiveMatcher).Each(func(_ int, s *goquery.Selection) {
		usage.TotalRegions++
		if namespace := RegionNamespace(s.AttrOr(interactiveAttr, "")); namespace != "" {
			usage.TotalRegionsByNamespace[namespace]++
		}
	})

	return usage
}

// RegionNamespace extracts the namespace from a data-wp-interactive value.
// The value is either a JSON object with a string "namespace" field or the
// namespace itself. Values that are neither JSON nor JSON null are taken
// verbatim; any other JSON value yields an empty namespace.
func RegionNamespace(raw string) string {
	if !json.Valid([]byte(raw)) {
		return raw
	}

	// Numbers stay undecoded so out-of-range values such as 1e999 are
	// still JSON numbers rather than decode errors.
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil || data == nil {
		return raw
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	namespace, _ := obj["namespace"].(string)
	return namespace
}
