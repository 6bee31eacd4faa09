package goquery_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wpsignals"
	wpgoquery "github.com/fwojciec/wpsignals/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Ensure Analyzer implements wpsignals.Analyzer at compile time.
var _ wpsignals.Analyzer = (*wpgoquery.Analyzer)(nil)

const blockThemePost = `<!DOCTYPE html>
<html lang="en-US">
<head>
<meta charset="UTF-8">
<title>Hello world! – Example</title>
<script id="wp-hooks-js-before">var hooksStart = 1;</script>
<script src="/wp-includes/js/dist/hooks.min.js?ver=4d63a3d491d11ffd8ac6" id="wp-hooks-js"></script>
</head>
<body class="post-template-default single single-post postid-1 single-format-standard logged-in wp-embed-responsive wp-theme-twentytwentyfour wp-child-theme-tt4-child singular">
<div class="wp-site-blocks">
<header class="wp-block-template-part">
<nav class="wp-block-navigation" data-wp-interactive="core/navigation" data-wp-context='{"overlayOpenedBy":{}}'></nav>
</header>
<main>
<figure class="wp-block-embed is-type-video is-provider-youtube wp-block-embed-youtube wp-embed-aspect-16-9 wp-has-aspect-ratio"></figure>
<figure class="wp-block-image" data-wp-interactive='{"namespace":"core/image"}'></figure>
</main>
</div>
<script src="/wp-includes/js/comment-reply.min.js?ver=6.5" id="comment-reply-js" async data-wp-strategy="async"></script>
</body>
</html>`

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("extracts signals from a block theme post", func(t *testing.T) {
		t.Parallel()

		a := wpgoquery.NewAnalyzer()

		report, err := a.Analyze(blockThemePost, "https://example.com/hello-world/")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/hello-world/", report.URL)
		assert.Equal(t, "html", report.Doctype)
		assert.Equal(t, wpgoquery.ComputeHash(blockThemePost), report.ContentHash)

		wp := report.CMS.WordPress
		require.NotNil(t, wp.Theme.Theme)
		assert.Equal(t, "twentytwentyfour", *wp.Theme.Theme)
		assert.Equal(t, "tt4-child", *wp.Theme.ChildTheme)
		assert.True(t, wp.BlockTheme)
		assert.True(t, wp.HasEmbedBlock)
		assert.Equal(t, 1, wp.EmbedBlockCount.Total)
		assert.Equal(t, map[string]int{"youtube": 1}, wp.EmbedBlockCount.TotalByType)
		assert.Equal(t, wpsignals.ContentType{Template: wpsignals.TemplateSingular, PostType: "post"}, wp.ContentType)
		assert.True(t, wp.UsesInteractivityAPI)
		assert.Equal(t, 2, wp.InteractivityAPIUsage.TotalRegions)
		assert.Equal(t, map[string]int{"core/navigation": 1, "core/image": 1}, wp.InteractivityAPIUsage.TotalRegionsByNamespace)

		require.Len(t, wp.Scripts, 2)
		assert.Equal(t, "wp-hooks", wp.Scripts[0].Handle)
		assert.Equal(t, "https://example.com/wp-includes/js/dist/hooks.min.js?ver=4d63a3d491d11ffd8ac6", wp.Scripts[0].Src)
		assert.False(t, wp.Scripts[0].InFooter)
		assert.Equal(t, intPtr(len("var hooksStart = 1;")), wp.Scripts[0].BeforeScriptSize)
		assert.Equal(t, "comment-reply", wp.Scripts[1].Handle)
		assert.True(t, wp.Scripts[1].InFooter)
		assert.True(t, wp.Scripts[1].Async)
		assert.Equal(t, strPtr("async"), wp.Scripts[1].IntendedStrategy)
	})

	t.Run("returns equal reports for repeated analysis", func(t *testing.T) {
		t.Parallel()

		a := wpgoquery.NewAnalyzer()

		first, err := a.Analyze(blockThemePost, "https://example.com/hello-world/")
		require.NoError(t, err)
		second, err := a.Analyze(blockThemePost, "https://example.com/hello-world/")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("keeps raw src without page URL", func(t *testing.T) {
		t.Parallel()

		report, err := wpgoquery.NewAnalyzer().Analyze(blockThemePost, "")

		require.NoError(t, err)
		assert.Empty(t, report.URL)
		assert.Equal(t, "/wp-includes/js/comment-reply.min.js?ver=6.5", report.CMS.WordPress.Scripts[1].Src)
	})

	t.Run("returns EINVALID for invalid page URL", func(t *testing.T) {
		t.Parallel()

		_, err := wpgoquery.NewAnalyzer().Analyze(blockThemePost, "://missing-scheme")

		require.Error(t, err)
		assert.Equal(t, wpsignals.EINVALID, wpsignals.ErrorCode(err))
	})

	t.Run("encodes absent signals as null and empty collections", func(t *testing.T) {
		t.Parallel()

		report, err := wpgoquery.NewAnalyzer().Analyze("<p>plain page</p>", "https://example.com/")
		require.NoError(t, err)

		data, err := json.Marshal(report.CMS.WordPress)
		require.NoError(t, err)

		expected := `{
			"theme": {"theme": null, "child_theme": null},
			"block_theme": false,
			"has_embed_block": false,
			"embed_block_count": {"total": 0, "total_by_type": {}},
			"scripts": [],
			"content_type": {"template": "unknown", "post_type": "", "taxonomy": ""},
			"uses_interactivity_api": false,
			"interactivity_api_usage": {"total_regions": 0, "total_regions_by_namespace": {}}
		}`
		assert.JSONEq(t, expected, string(data))
	})
}

func TestExtractSignals(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for an empty document tree", func(t *testing.T) {
		t.Parallel()

		doc := goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})

		signals := wpgoquery.ExtractSignals(doc, nil)

		assert.Nil(t, signals.Theme.Theme)
		assert.False(t, signals.BlockTheme)
		assert.NotNil(t, signals.Scripts)
		assert.Equal(t, wpsignals.DefaultContentType(), signals.ContentType)
		assert.Equal(t, wpsignals.NewEmbedSummary(), signals.EmbedBlockCount)
		assert.Equal(t, wpsignals.NewInteractivityUsage(), signals.InteractivityAPIUsage)
	})

	t.Run("ignores markup inside template elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", `<template id="tpl">
<div class="wp-site-blocks"></div>
<figure class="wp-block-embed is-provider-youtube"><div class="wp-block-embed__wrapper"></div></figure>
<div data-wp-interactive="core/search"></div>
<script src="/t.js" id="t-js"></script>
<script id="main-js-after">inside();</script>
</template>
<script src="/main.js" id="main-js"></script>`))

		signals := wpgoquery.ExtractSignals(doc, nil)

		assert.False(t, signals.BlockTheme)
		assert.False(t, signals.HasEmbedBlock)
		assert.Equal(t, wpsignals.NewEmbedSummary(), signals.EmbedBlockCount)
		assert.False(t, signals.UsesInteractivityAPI)
		assert.Equal(t, wpsignals.NewInteractivityUsage(), signals.InteractivityAPIUsage)
		require.Len(t, signals.Scripts, 1)
		assert.Equal(t, "main", signals.Scripts[0].Handle)
		assert.Nil(t, signals.Scripts[0].AfterScriptSize)
	})

	t.Run("still matches the template element itself", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", `<template data-wp-interactive="core/tpl"><div data-wp-interactive="inner"></div></template>`))

		usage := wpgoquery.InteractivityAPIUsage(doc)

		assert.Equal(t, 1, usage.TotalRegions)
		assert.Equal(t, map[string]int{"core/tpl": 1}, usage.TotalRegionsByNamespace)
	})
}

func TestDocumentBase(t *testing.T) {
	t.Parallel()

	page, err := url.Parse("https://example.com/blog/post/")
	require.NoError(t, err)

	t.Run("uses page URL without base element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", ""))

		base := wpgoquery.DocumentBase(doc, page)

		require.NotNil(t, base)
		assert.Equal(t, "https://example.com/blog/post/", base.String())
	})

	t.Run("resolves base href against page URL", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><base href="/assets/"><base href="/ignored/"></head><body></body></html>`)

		base := wpgoquery.DocumentBase(doc, page)

		require.NotNil(t, base)
		assert.Equal(t, "https://example.com/assets/", base.String())
	})

	t.Run("uses absolute base href without page URL", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><base href="https://cdn.example.org/"></head><body></body></html>`)

		base := wpgoquery.DocumentBase(doc, nil)

		require.NotNil(t, base)
		assert.Equal(t, "https://cdn.example.org/", base.String())
	})

	t.Run("returns nil for relative page URL", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", ""))
		relative, err := url.Parse("page.html")
		require.NoError(t, err)

		assert.Nil(t, wpgoquery.DocumentBase(doc, relative))
	})
}
