package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
)

// ContentTypeOf classifies the document from its body classes.
// The first matching branch wins; later branches are never consulted.
func ContentTypeOf(doc *goquery.Document) wpsignals.ContentType {
	classes, ok := bodyClasses(doc)
	if !ok {
		return wpsignals.DefaultContentType()
	}
	return ClassifyContentType(classes)
}

// ClassifyContentType applies the content-type decision tree to a body
// class list.
func ClassifyContentType(classes wpsignals.ClassList) wpsignals.ContentType {
	content := wpsignals.DefaultContentType()

	switch {
	case classes.Contains("home"):
		// The home page, either containing the blog or a static front page.
		if classes.Contains("blog") {
			content.Template = wpsignals.TemplateHomeBlog
			content.PostType = "post"
		} else if classes.Contains("page") {
			content.Template = wpsignals.TemplateHomePage
			content.PostType = "page"
		}

	case classes.Contains("blog"):
		// The posts page when a static front page is configured.
		content.Template = wpsignals.TemplateBlog
		content.PostType = "post"

	case classes.Contains("singular"):
		content.Template = wpsignals.TemplateSingular
		if classes.Contains("page") {
			content.PostType = "page"
		} else if classes.Contains("single") {
			// single-format-* names the post format, not the post type.
			if postType, ok := classes.TrimmedWithPrefix("single-", "single-format-"); ok {
				content.PostType = postType
			}
		}

	case classes.Contains("archive"):
		content.Template = wpsignals.TemplateArchive
		switch {
		case classes.Contains("category"):
			content.Taxonomy = "category"
		case classes.Contains("tag"):
			content.Taxonomy = "tag"
		case classes.Contains("post-type-archive"):
			if postType, ok := classes.TrimmedWithPrefix("post-type-archive-"); ok {
				content.PostType = postType
			}
		default:
			if taxonomy, ok := classes.TrimmedWithPrefix("tax-"); ok {
				content.Taxonomy = taxonomy
			}
		}
	}

	return content
}
