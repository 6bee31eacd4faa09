package goquery_test

import (
	"testing"

	wpgoquery "github.com/fwojciec/wpsignals/goquery"
	"github.com/stretchr/testify/assert"
)

func TestEmbedBlockCount(t *testing.T) {
	t.Parallel()

	t.Run("counts embeds by provider", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("single", `
<figure class="wp-block-embed is-type-video is-provider-youtube wp-block-embed-youtube"><div class="wp-block-embed__wrapper"></div></figure>
<figure class="wp-block-embed is-provider-youtube"></figure>
<figure class="wp-block-embed is-type-rich is-provider-twitter"></figure>
<figure class="wp-block-embed"></figure>
<div class="wp-block-embed is-provider-vimeo"></div>`))

		summary := wpgoquery.EmbedBlockCount(doc)

		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, map[string]int{"youtube": 2, "twitter": 1}, summary.TotalByType)
		assert.True(t, wpgoquery.HasEmbedBlock(doc))
	})

	t.Run("provider total equals total when every embed has a provider", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", `
<figure class="wp-block-embed is-provider-spotify"></figure>
<figure class="wp-block-embed is-provider-wordpress-tv"></figure>`))

		summary := wpgoquery.EmbedBlockCount(doc)

		sum := 0
		for _, n := range summary.TotalByType {
			sum += n
		}
		assert.Equal(t, summary.Total, sum)
		assert.Equal(t, map[string]int{"spotify": 1, "wordpress-tv": 1}, summary.TotalByType)
	})

	t.Run("returns empty map without embeds", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("home", `<figure class="wp-block-image"></figure>`))

		summary := wpgoquery.EmbedBlockCount(doc)

		assert.Equal(t, 0, summary.Total)
		assert.NotNil(t, summary.TotalByType)
		assert.Empty(t, summary.TotalByType)
		assert.False(t, wpgoquery.HasEmbedBlock(doc))
	})

	t.Run("returns empty summary for nil document", func(t *testing.T) {
		t.Parallel()

		summary := wpgoquery.EmbedBlockCount(nil)

		assert.Equal(t, 0, summary.Total)
		assert.NotNil(t, summary.TotalByType)
		assert.False(t, wpgoquery.HasEmbedBlock(nil))
	})
}
