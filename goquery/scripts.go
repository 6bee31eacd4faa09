package goquery

import (
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// handleSuffix marks the id of a script printed for a registered handle.
const handleSuffix = "-js"

// Suffixes appended to "<handle>-js" for inline companion scripts.
const (
	afterSuffix        = "-after"
	beforeSuffix       = "-before"
	extraSuffix        = "-extra"
	translationsSuffix = "-translations"
)

const strategyAttr = "data-wp-strategy"

// Scripts lists external scripts printed for registered handles, in
// document order. Relative src values are resolved against base when base
// is non-nil.
func Scripts(doc *goquery.Document, base *url.URL) []wpsignals.ScriptEntry {
	entries := []wpsignals.ScriptEntry{}

	scripts := findAll(doc, scriptMatcher)
	if scripts.Length() == 0 {
		return entries
	}

	ids := indexIDs(doc)
	head := documentHead(doc)

	scripts.Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		id, _ := attr(node, "id")
		src, _ := attr(node, "src")
		handle := strings.TrimSuffix(id, handleSuffix)
		prefix := handle + handleSuffix

		entries = append(entries, wpsignals.ScriptEntry{
			Handle:                 handle,
			Src:                    resolveURL(base, src),
			InFooter:               head == nil || node.Parent != head,
			Async:                  hasAttr(node, "async"),
			Defer:                  hasAttr(node, "defer"),
			IntendedStrategy:       intendedStrategy(node),
			AfterScriptSize:        inlineScriptSize(ids[prefix+afterSuffix]),
			BeforeScriptSize:       inlineScriptSize(ids[prefix+beforeSuffix]),
			ExtraScriptSize:        inlineScriptSize(ids[prefix+extraSuffix]),
			TranslationsScriptSize: inlineScriptSize(ids[prefix+translationsSuffix]),
		})
	})

	return entries
}

// indexIDs maps each id to the first element carrying it, mirroring
// document.getElementById.
func indexIDs(doc *goquery.Document) map[string]*html.Node {
	ids := make(map[string]*html.Node)
	for _, n := range findAll(doc, idMatcher).Nodes {
		id, _ := attr(n, "id")
		if _, ok := ids[id]; !ok {
			ids[id] = n
		}
	}
	return ids
}

// inlineScriptSize returns the text length of n when n is an HTML script
// element without a src attribute, and nil otherwise. The length is
// counted in UTF-16 code units, as the DOM counts string length.
func inlineScriptSize(n *html.Node) *int {
	if n == nil || n.Type != html.ElementNode || n.DataAtom != atom.Script || n.Namespace != "" {
		return nil
	}
	if hasAttr(n, "src") {
		return nil
	}
	size := len(utf16.Encode([]rune(textContent(n))))
	return &size
}

func intendedStrategy(n *html.Node) *string {
	strategy, ok := attr(n, strategyAttr)
	if !ok || strategy == "" {
		return nil
	}
	return &strategy
}

// resolveURL resolves a script src against base the way script.src reads.
// Tabs and newlines are removed, the fragment always comes from src, and
// the host is lowercased without its default port. The raw value is
// returned when base is unknown or the value cannot be parsed as a URL.
func resolveURL(base *url.URL, src string) string {
	if base == nil {
		return src
	}
	ref, err := url.Parse(strings.TrimSpace(urlNoise.Replace(src)))
	if err != nil {
		return src
	}
	u := base.ResolveReference(ref)
	u.Fragment, u.RawFragment = ref.Fragment, ref.RawFragment
	if u.Host != "" {
		u.Host = strings.ToLower(strings.TrimSuffix(u.Host, defaultPorts[u.Scheme]))
	}
	return u.String()
}

// urlNoise drops characters the URL parser strips from anywhere in input.
var urlNoise = strings.NewReplacer("\t", "", "\n", "", "\r", "")

var defaultPorts = map[string]string{
	"http":  ":80",
	"https": ":443",
	"ws":    ":80",
	"wss":   ":443",
	"ftp":   ":21",
}

// textContent concatenates the text of all descendant text nodes.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}
