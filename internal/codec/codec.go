// Package codec implements the export/import round-trip: embedding the full
// document as a Base64 HTML comment on export and recovering it (including
// legacy-format migration) on import.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"newsletter-studio/internal/model"
	"newsletter-studio/internal/render"
)

// Import error taxonomy. Callers distinguish the two with errors.Is: a
// missing marker is recoverable user error, a failed decode means the file
// was damaged.
var (
	ErrNoEmbeddedData = errors.New("no embedded data found: this HTML was not exported from this editor")
	ErrCorruptedData  = errors.New("corrupted embedded data")
)

// GmailClipThreshold is the approximate byte size beyond which common email
// providers clip messages. Export reports it; nothing enforces it.
const GmailClipThreshold = 102400

// b64ChunkWidth is the wrap column for the embedded Base64 payload. Purely
// cosmetic: the importer strips all whitespace before decoding.
const b64ChunkWidth = 100

var (
	b64Re        = regexp.MustCompile(`(?s)<!-- WSU_NEWSLETTER_DATA_B64\s+(.*?)\s+-->`)
	legacyRe     = regexp.MustCompile(`(?s)<!-- WSU_NEWSLETTER_DATA:(.*?) -->`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	minifyRe     = regexp.MustCompile(`>\s+<`)
)

// Options controls the export variant.
type Options struct {
	// Minify collapses whitespace strictly between adjacent tags. Text
	// content is never touched.
	Minify bool
	// StripEmbeddedData omits the embedded document comment, producing a
	// production file that cannot be re-imported.
	StripEmbeddedData bool
}

// Result is a finished export.
type Result struct {
	HTML         string
	Filename     string
	Size         int
	ClippingRisk bool
}

// Export renders the document and optionally minifies it and embeds the
// source document as a Base64 comment immediately before </body>.
func Export(n *model.Newsletter, opts Options) (*Result, error) {
	html, err := render.FullEmail(n)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	if opts.Minify {
		html = minifyRe.ReplaceAllString(html, "><")
	}

	if !opts.StripEmbeddedData {
		comment, err := embedComment(n)
		if err != nil {
			return nil, err
		}
		html = strings.Replace(html, "</body>", comment+"</body>", 1)
	}

	return &Result{
		HTML:         html,
		Filename:     Filename(n.Template, opts.StripEmbeddedData, time.Now()),
		Size:         len(html),
		ClippingRisk: len(html) > GmailClipThreshold,
	}, nil
}

func embedComment(n *model.Newsletter) (string, error) {
	raw, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(raw)

	var sb strings.Builder
	sb.WriteString("<!-- WSU_NEWSLETTER_DATA_B64\n")
	for i := 0; i < len(b64); i += b64ChunkWidth {
		end := i + b64ChunkWidth
		if end > len(b64) {
			end = len(b64)
		}
		sb.WriteString(b64[i:end])
		sb.WriteByte('\n')
	}
	sb.WriteString("-->\n")
	return sb.String(), nil
}

// Filename derives the download name from the template type and date, with a
// _PRODUCTION suffix when the embedded data was stripped.
func Filename(t model.TemplateType, stripped bool, now time.Time) string {
	prefix := "Newsletter_"
	switch t {
	case model.TemplateFF:
		prefix = "Friday_Focus_"
	case model.TemplateBriefing:
		prefix = "Briefing_"
	case model.TemplateLetter:
		prefix = "Slate_Campaign_"
	}
	suffix := ""
	if stripped {
		suffix = "_PRODUCTION"
	}
	return prefix + now.Format("2006-01-02") + suffix + ".html"
}

// Import recovers a document from exported HTML. The Base64 comment form is
// tried first and returned as-is; the legacy plaintext JSON form falls back
// and runs the social-links and title-alignment migrations unconditionally.
func Import(html string) (*model.Newsletter, error) {
	if m := b64Re.FindStringSubmatch(html); m != nil {
		payload := whitespaceRe.ReplaceAllString(m[1], "")
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: base64 decode failed: %v", ErrCorruptedData, err)
		}
		var n model.Newsletter
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorruptedData, err)
		}
		return &n, nil
	}

	m := legacyRe.FindStringSubmatch(html)
	if m == nil {
		return nil, ErrNoEmbeddedData
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(m[1]), &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorruptedData, err)
	}

	migrateSocial(doc)
	migrateTitleAlign(doc)

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedData, err)
	}
	var n model.Newsletter
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorruptedData, err)
	}
	return &n, nil
}

// legacySocialPlatforms is the fixed migration order. Result order follows
// this list, not key order in the source object; unknown keys are dropped.
var legacySocialPlatforms = []string{"instagram", "linkedin", "facebook", "twitter", "youtube"}

// migrateSocial converts a keyed footer.social object (schema V6 and older)
// into the ordered V7 array form.
func migrateSocial(doc map[string]any) {
	footer, ok := doc["footer"].(map[string]any)
	if !ok {
		return
	}
	social, ok := footer["social"].(map[string]any)
	if !ok {
		return
	}

	migrated := make([]any, 0, len(social))
	for _, key := range legacySocialPlatforms {
		entry, ok := social[key]
		if !ok {
			continue
		}
		name := capitalize(key)
		switch v := entry.(type) {
		case string:
			// Oldest format: a bare URL string.
			migrated = append(migrated, map[string]any{
				"platform": name,
				"url":      v,
				"icon":     "",
				"alt":      name,
			})
		case map[string]any:
			// V6 format: object with url/icon and maybe alt.
			migrated = append(migrated, map[string]any{
				"platform": name,
				"url":      str(v, "url"),
				"icon":     str(v, "icon"),
				"alt":      strOr(v, "alt", name),
			})
		}
	}
	footer["social"] = migrated
}

// migrateTitleAlign injects title_align on any section layout missing it.
func migrateTitleAlign(doc map[string]any) {
	sections, ok := doc["sections"].([]any)
	if !ok {
		return
	}
	for _, s := range sections {
		section, ok := s.(map[string]any)
		if !ok {
			continue
		}
		layout, ok := section["layout"].(map[string]any)
		if !ok {
			continue
		}
		if _, ok := layout["title_align"]; !ok {
			layout["title_align"] = "left"
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func str(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func strOr(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}
