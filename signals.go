package wpsignals

// Signals is the WordPress snapshot of a single document.
// Absent signals are represented as null (nil pointers), zero counts, or
// empty collections; they are never omitted from the encoded form.
type Signals struct {
	Theme                 ThemeInfo          `json:"theme" yaml:"theme"`
	BlockTheme            bool               `json:"block_theme" yaml:"block_theme"`
	HasEmbedBlock         bool               `json:"has_embed_block" yaml:"has_embed_block"`
	EmbedBlockCount       EmbedSummary       `json:"embed_block_count" yaml:"embed_block_count"`
	Scripts               []ScriptEntry      `json:"scripts" yaml:"scripts"`
	ContentType           ContentType        `json:"content_type" yaml:"content_type"`
	UsesInteractivityAPI  bool               `json:"uses_interactivity_api" yaml:"uses_interactivity_api"`
	InteractivityAPIUsage InteractivityUsage `json:"interactivity_api_usage" yaml:"interactivity_api_usage"`
}

// ThemeInfo identifies the parent and child theme from body classes.
//
// Theme is nil when no parent theme class was found. ChildTheme is nil
// only when Theme is nil; otherwise it points at the child theme slug or
// at an empty string when no child theme class was found.
type ThemeInfo struct {
	Theme      *string `json:"theme" yaml:"theme"`
	ChildTheme *string `json:"child_theme" yaml:"child_theme"`
}

// EmbedSummary counts embed blocks. Embeds without a provider class are
// counted in Total only.
type EmbedSummary struct {
	Total       int            `json:"total" yaml:"total"`
	TotalByType map[string]int `json:"total_by_type" yaml:"total_by_type"`
}

// NewEmbedSummary returns an empty summary with a non-nil map.
func NewEmbedSummary() EmbedSummary {
	return EmbedSummary{TotalByType: make(map[string]int)}
}

// ScriptEntry describes an external script printed for a registered handle.
// A *Size field holds the length of the matching inline companion script,
// or nil when there is none.
type ScriptEntry struct {
	Handle                 string  `json:"handle" yaml:"handle"`
	Src                    string  `json:"src" yaml:"src"`
	InFooter               bool    `json:"in_footer" yaml:"in_footer"`
	Async                  bool    `json:"async" yaml:"async"`
	Defer                  bool    `json:"defer" yaml:"defer"`
	IntendedStrategy       *string `json:"intended_strategy" yaml:"intended_strategy"`
	AfterScriptSize        *int    `json:"after_script_size" yaml:"after_script_size"`
	BeforeScriptSize       *int    `json:"before_script_size" yaml:"before_script_size"`
	ExtraScriptSize        *int    `json:"extra_script_size" yaml:"extra_script_size"`
	TranslationsScriptSize *int    `json:"translations_script_size" yaml:"translations_script_size"`
}

// Template identifies the kind of WordPress template that rendered a page.
type Template string

// Templates recognized by the content-type classifier.
const (
	TemplateUnknown  Template = "unknown"
	TemplateHomeBlog Template = "home-blog"
	TemplateHomePage Template = "home-page"
	TemplateBlog     Template = "blog"
	TemplateSingular Template = "singular"
	TemplateArchive  Template = "archive"
)

// ContentType is the template/post type/taxonomy triple of a page.
type ContentType struct {
	Template Template `json:"template" yaml:"template"`
	PostType string   `json:"post_type" yaml:"post_type"`
	Taxonomy string   `json:"taxonomy" yaml:"taxonomy"`
}

// DefaultContentType returns the record used when no branch matches.
func DefaultContentType() ContentType {
	return ContentType{Template: TemplateUnknown}
}

// InteractivityUsage counts Interactivity API regions. Regions without a
// non-empty namespace are counted in TotalRegions only.
type InteractivityUsage struct {
	TotalRegions            int            `json:"total_regions" yaml:"total_regions"`
	TotalRegionsByNamespace map[string]int `json:"total_regions_by_namespace" yaml:"total_regions_by_namespace"`
}

// NewInteractivityUsage returns an empty usage record with a non-nil map.
func NewInteractivityUsage() InteractivityUsage {
	return InteractivityUsage{TotalRegionsByNamespace: make(map[string]int)}
}
