// Package goquery implements WordPress signal extraction over documents
// parsed with github.com/PuerkitoBio/goquery.
//
// Every extractor is a pure function of the document tree. A missing
// element or attribute yields the documented default value, never an error.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/wpsignals"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Compiled selectors shared by the extractors.
var (
	blockThemeMatcher  = cascadia.MustCompile("div.wp-site-blocks")
	embedBlockMatcher  = cascadia.MustCompile("figure.wp-block-embed")
	scriptMatcher      = cascadia.MustCompile(`script[src][id$="-js"]`)
	interactiveMatcher = cascadia.MustCompile("[" + interactiveAttr + "]")
	idMatcher          = cascadia.MustCompile("[id]")
	baseMatcher        = cascadia.MustCompile("base[href]")
)

// rootNode returns the node the document was built from, or nil.
func rootNode(doc *goquery.Document) *html.Node {
	if doc == nil || len(doc.Nodes) == 0 {
		return nil
	}
	return doc.Nodes[0]
}

// documentElement returns the root html element of the document.
func documentElement(doc *goquery.Document) *html.Node {
	root := rootNode(doc)
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode {
		if root.DataAtom == atom.Html {
			return root
		}
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if c.DataAtom == atom.Html && c.Namespace == "" {
				return c
			}
			return nil
		}
	}
	return nil
}

// childElement returns the first HTML child element of parent whose tag is
// one of tags.
func childElement(parent *html.Node, tags ...atom.Atom) *html.Node {
	if parent == nil {
		return nil
	}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Namespace != "" {
			continue
		}
		for _, tag := range tags {
			if c.DataAtom == tag {
				return c
			}
		}
	}
	return nil
}

// documentHead mirrors document.head.
func documentHead(doc *goquery.Document) *html.Node {
	return childElement(documentElement(doc), atom.Head)
}

// documentBody mirrors document.body.
func documentBody(doc *goquery.Document) *html.Node {
	return childElement(documentElement(doc), atom.Body, atom.Frameset)
}

// bodyClasses returns the class list of the body element.
// It reports false when the document has no body.
func bodyClasses(doc *goquery.Document) (wpsignals.ClassList, bool) {
	body := documentBody(doc)
	if body == nil {
		return nil, false
	}
	value, _ := attr(body, "class")
	return wpsignals.ParseClassList(value), true
}

// walkElements calls fn for each element below root in document order
// until fn returns false. The contents of template elements are skipped,
// as DOM queries do not descend into template.content.
func walkElements(root *html.Node, fn func(*html.Node) bool) bool {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if !fn(c) {
			return false
		}
		if c.DataAtom == atom.Template && c.Namespace == "" {
			continue
		}
		if !walkElements(c, fn) {
			return false
		}
	}
	return true
}

// exists reports whether any element of the document matches m.
// It stops at the first match.
func exists(doc *goquery.Document, m cascadia.Matcher) bool {
	root := rootNode(doc)
	if root == nil {
		return false
	}
	found := false
	walkElements(root, func(n *html.Node) bool {
		found = m.Match(n)
		return !found
	})
	return found
}

// findAll returns the elements matching m in document order.
func findAll(doc *goquery.Document, m cascadia.Matcher) *goquery.Selection {
	root := rootNode(doc)
	if root == nil {
		return &goquery.Selection{}
	}
	var nodes []*html.Node
	walkElements(root, func(n *html.Node) bool {
		if m.Match(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return doc.FindNodes(nodes...)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
