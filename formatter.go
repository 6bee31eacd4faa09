package wpsignals

import (
	"fmt"
	"slices"
	"strings"
)

// FormatReport renders a report as a short human-readable summary.
// Map entries are sorted by count (descending) and then by key so the
// output is stable across runs.
func FormatReport(r *Report) string {
	if r == nil {
		return ""
	}
	wp := r.CMS.WordPress

	var b strings.Builder
	b.WriteString(r.URL)
	b.WriteString("\n")

	doctype := r.Doctype
	if doctype == "" {
		doctype = "(none)"
	}
	fmt.Fprintf(&b, "  doctype: %s\n", doctype)
	fmt.Fprintf(&b, "  theme: %s\n", formatTheme(wp.Theme))
	fmt.Fprintf(&b, "  block theme: %s\n", yesNo(wp.BlockTheme))
	fmt.Fprintf(&b, "  content type: %s\n", formatContentType(wp.ContentType))
	fmt.Fprintf(&b, "  embeds: %d%s\n", wp.EmbedBlockCount.Total, formatCounts(wp.EmbedBlockCount.TotalByType))
	fmt.Fprintf(&b, "  scripts: %s\n", formatScripts(wp.Scripts))
	fmt.Fprintf(&b, "  interactivity regions: %d%s\n",
		wp.InteractivityAPIUsage.TotalRegions,
		formatCounts(wp.InteractivityAPIUsage.TotalRegionsByNamespace))

	return b.String()
}

func formatTheme(t ThemeInfo) string {
	if t.Theme == nil {
		return "(none)"
	}
	if t.ChildTheme == nil || *t.ChildTheme == "" {
		return *t.Theme
	}
	return *t.Theme + " (child: " + *t.ChildTheme + ")"
}

func formatContentType(ct ContentType) string {
	s := string(ct.Template)
	if ct.PostType != "" {
		s += " post_type=" + ct.PostType
	}
	if ct.Taxonomy != "" {
		s += " taxonomy=" + ct.Taxonomy
	}
	return s
}

func formatScripts(scripts []ScriptEntry) string {
	var footer, async, deferred int
	for _, s := range scripts {
		if s.InFooter {
			footer++
		}
		if s.Async {
			async++
		}
		if s.Defer {
			deferred++
		}
	}
	return fmt.Sprintf("%d (footer: %d, async: %d, defer: %d)", len(scripts), footer, async, deferred)
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, counts[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
