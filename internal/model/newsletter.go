package model

// TemplateType selects one of the three seed layouts.
type TemplateType string

const (
	TemplateFF       TemplateType = "ff"
	TemplateBriefing TemplateType = "briefing"
	TemplateLetter   TemplateType = "letter"
)

// Alignment values accepted by title_align and related fields. Anything else
// falls back to left at render time.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// ValidAlign reports whether s is one of the three alignment values.
func ValidAlign(s string) bool {
	return s == AlignLeft || s == AlignCenter || s == AlignRight
}

// Padding is a partially specified padding box. A nil side inherits from the
// next source in the padding cascade; see render.ResolvePadding.
type Padding struct {
	Top    *int `json:"top,omitempty"`
	Right  *int `json:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`
}

// Pad builds a fully specified padding box.
func Pad(top, right, bottom, left int) *Padding {
	return &Padding{Top: Int(top), Right: Int(right), Bottom: Int(bottom), Left: Int(left)}
}

// Box is a fully resolved padding box, ready to print as a CSS shorthand.
type Box struct {
	Top, Right, Bottom, Left int
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Typography is advisory sizing data carried for the editing UI.
type Typography struct {
	FontFamily     string  `json:"font_family,omitempty"`
	H2Size         int     `json:"h2_size,omitempty"`
	H2LineHeight   float64 `json:"h2_line_height,omitempty"`
	H3Size         int     `json:"h3_size,omitempty"`
	H3LineHeight   float64 `json:"h3_line_height,omitempty"`
	BodySize       int     `json:"body_size,omitempty"`
	BodyLineHeight float64 `json:"body_line_height,omitempty"`
	MetaSize       int     `json:"meta_size,omitempty"`
	MetaLineHeight float64 `json:"meta_line_height,omitempty"`
}

// Colors is the per-document brand palette. It is carried for the editing UI
// only: the renderer draws its colors from the fixed palette in
// internal/styles, so changing these values does not change rendered output.
type Colors struct {
	Primary   string `json:"primary,omitempty"`
	TextDark  string `json:"text_dark,omitempty"`
	TextBody  string `json:"text_body,omitempty"`
	TextMuted string `json:"text_muted,omitempty"`
}

// Settings holds document-wide layout knobs.
type Settings struct {
	ContainerWidth     int        `json:"container_width"`
	SectionSpacing     int        `json:"section_spacing"`
	ShowSectionBorders *bool      `json:"show_section_borders,omitempty"`
	PaddingText        *Padding   `json:"padding_text,omitempty"`
	PaddingImage       *Padding   `json:"padding_image,omitempty"`
	Typography         Typography `json:"typography"`
	Colors             Colors     `json:"colors"`
}

// Width limits for the email container. Values are clamped when a document is
// accepted at the write boundary; renderers trust the stored value.
const (
	MinContainerWidth     = 560
	MaxContainerWidth     = 700
	DefaultContainerWidth = 640
)

// ClampContainerWidth normalizes a container width into the supported range.
func ClampContainerWidth(w int) int {
	if w == 0 {
		return DefaultContainerWidth
	}
	if w < MinContainerWidth {
		return MinContainerWidth
	}
	if w > MaxContainerWidth {
		return MaxContainerWidth
	}
	return w
}

// Masthead is the banner/title/tagline block at the top of the email.
type Masthead struct {
	BannerURL     string   `json:"banner_url,omitempty"`
	BannerAlt     string   `json:"banner_alt,omitempty"`
	BannerAlign   string   `json:"banner_align,omitempty"`
	BannerPadding *Padding `json:"banner_padding,omitempty"`
	Title         string   `json:"title,omitempty"`
	Tagline       string   `json:"tagline,omitempty"`
	Preheader     string   `json:"preheader,omitempty"`
	HeroShow      *bool    `json:"hero_show,omitempty"`
	HeroLink      string   `json:"hero_link,omitempty"`
}

// Link is a labelled URL. Empty or "#" URLs are placeholders: validation
// flags them but they still render.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SocialLink is one footer social-media entry (the V7 array form).
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Alt      string `json:"alt"`
}

// Closure is one date+reason entry in an office-closures section.
type Closure struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// SectionLayout controls spacing, dividers and heading alignment for one
// section. PaddingText/PaddingImage are optional per-section overrides of the
// global padding settings; they are absent on most sections.
type SectionLayout struct {
	PaddingTop       int      `json:"padding_top"`
	PaddingBottom    int      `json:"padding_bottom"`
	BackgroundColor  string   `json:"background_color"`
	BorderRadius     int      `json:"border_radius"`
	DividerEnabled   *bool    `json:"divider_enabled,omitempty"`
	DividerThickness int      `json:"divider_thickness"`
	DividerColor     string   `json:"divider_color"`
	DividerSpacing   int      `json:"divider_spacing"`
	TitleAlign       string   `json:"title_align"`
	PaddingText      *Padding `json:"padding_text,omitempty"`
	PaddingImage     *Padding `json:"padding_image,omitempty"`
}

// Section is one content block. By convention a section carries either Cards
// or Closures, never both: the literal key "closures" switches the renderer
// to the closures list and makes it ignore Cards entirely (and vice versa).
// The schema does not enforce the exclusivity; the renderer's key dispatch
// does.
type Section struct {
	Key      string        `json:"key"`
	Title    string        `json:"title"`
	Layout   SectionLayout `json:"layout"`
	Cards    Cards         `json:"cards,omitempty"`
	Closures []Closure     `json:"closures,omitempty"`
}

// ClosuresKey is the section key that selects the closures renderer.
const ClosuresKey = "closures"

// Footer is the bottom block with address lines and social icons. The
// spacing fields honor an explicit zero, so they are pointers: absent means
// "use the rendered default", zero means zero.
type Footer struct {
	AddressLines       []string     `json:"address_lines"`
	Social             []SocialLink `json:"social"`
	BackgroundColor    string       `json:"background_color,omitempty"`
	TextColor          string       `json:"text_color,omitempty"`
	LinkColor          string       `json:"link_color,omitempty"`
	PaddingTop         *int         `json:"padding_top,omitempty"`
	PaddingBottom      *int         `json:"padding_bottom,omitempty"`
	SocialMarginTop    *int         `json:"social_margin_top,omitempty"`
	SocialMarginBottom *int         `json:"social_margin_bottom,omitempty"`
}

// Newsletter is the root document. It is the unit of transfer for every
// render, export, import and stats call: no partial diff protocol exists.
type Newsletter struct {
	Template TemplateType `json:"template"`
	Masthead Masthead     `json:"masthead"`
	Sections []Section    `json:"sections"`
	Footer   Footer       `json:"footer"`
	Settings Settings     `json:"settings"`
}
