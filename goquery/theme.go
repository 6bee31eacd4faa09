package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
)

const (
	parentThemePrefix = "wp-theme-"
	childThemePrefix  = "wp-child-theme-"
)

// Theme detects the parent and child theme slugs from body classes.
// See https://core.trac.wordpress.org/changeset/59698.
//
// A child theme is only reported alongside a parent theme.
func Theme(doc *goquery.Document) wpsignals.ThemeInfo {
	var info wpsignals.ThemeInfo

	classes, ok := bodyClasses(doc)
	if !ok {
		return info
	}

	parent, ok := classes.TrimmedWithPrefix(parentThemePrefix)
	if !ok {
		return info
	}
	child, _ := classes.TrimmedWithPrefix(childThemePrefix)

	info.Theme = &parent
	info.ChildTheme = &child
	return info
}

// UsesBlockTheme reports whether the document contains the block theme
// site wrapper.
func UsesBlockTheme(doc *goquery.Document) bool {
	return exists(doc, blockThemeMatcher)
}
