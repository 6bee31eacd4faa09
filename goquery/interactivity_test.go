package goquery_test

import (
	"testing"

	wpgoquery "github.com/fwojciec/wpsignals/goquery"
	"github.com/stretchr/testify/assert"
)

func TestInteractivityAPIUsage(t *testing.T) {
	t.Parallel()

	t.Run("counts regions by namespace", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", `
<div data-wp-interactive='{"namespace":"my/widget"}'></div>
<div data-wp-interactive="my-plain-string"></div>
<div data-wp-interactive="{}"></div>
<section data-wp-interactive='{"namespace":"my/widget"}'>
	<nav data-wp-interactive="core/navigation"></nav>
</section>
<div data-wp-interactive='{"namespace":42}'></div>
<div data-wp-interactive></div>`))

		usage := wpgoquery.InteractivityAPIUsage(doc)

		assert.Equal(t, 7, usage.TotalRegions)
		assert.Equal(t, map[string]int{
			"my/widget":       2,
			"my-plain-string": 1,
			"core/navigation": 1,
		}, usage.TotalRegionsByNamespace)
		assert.True(t, wpgoquery.UsesInteractivityAPI(doc))
	})

	t.Run("returns empty usage without regions", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, body("", `<div data-wp-bind--hidden="state.hidden"></div>`))

		usage := wpgoquery.InteractivityAPIUsage(doc)

		assert.Equal(t, 0, usage.TotalRegions)
		assert.NotNil(t, usage.TotalRegionsByNamespace)
		assert.Empty(t, usage.TotalRegionsByNamespace)
		assert.False(t, wpgoquery.UsesInteractivityAPI(doc))
	})
}

func TestRegionNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "object with namespace", raw: `{"namespace":"my/widget"}`, want: "my/widget"},
		{name: "object with extra fields", raw: ` {"namespace": "core/search", "other": true} `, want: "core/search"},
		{name: "plain string", raw: "my-plain-string", want: "my-plain-string"},
		{name: "empty object", raw: "{}", want: ""},
		{name: "empty namespace", raw: `{"namespace":""}`, want: ""},
		{name: "non-string namespace", raw: `{"namespace":["a"]}`, want: ""},
		{name: "JSON string", raw: `"quoted"`, want: ""},
		{name: "JSON number", raw: "42", want: ""},
		{name: "out of range JSON number", raw: "1e999", want: ""},
		{name: "object with out of range number", raw: `{"namespace":"big/num","n":1e999}`, want: "big/num"},
		{name: "JSON with trailing text", raw: `{"namespace":"a"} b`, want: `{"namespace":"a"} b`},
		{name: "JSON array", raw: `[{"namespace":"a"}]`, want: ""},
		{name: "JSON null", raw: "null", want: "null"},
		{name: "malformed object", raw: `{"namespace":`, want: `{"namespace":`},
		{name: "empty value", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wpgoquery.RegionNamespace(tt.raw))
		})
	}
}
