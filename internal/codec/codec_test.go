package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"newsletter-studio/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	for _, minify := range []bool{false, true} {
		doc, err := model.DefaultNewsletter(model.TemplateFF)
		if err != nil {
			t.Fatalf("default document: %v", err)
		}
		doc.Masthead.Title = "Round Trip Issue"

		res, err := Export(doc, Options{Minify: minify})
		if err != nil {
			t.Fatalf("export (minify=%v): %v", minify, err)
		}
		if res.Size != len(res.HTML) {
			t.Errorf("size mismatch: %d vs %d", res.Size, len(res.HTML))
		}
		if !strings.Contains(res.HTML, "WSU_NEWSLETTER_DATA_B64") {
			t.Fatalf("export missing embedded comment")
		}

		got, err := Import(res.HTML)
		if err != nil {
			t.Fatalf("import (minify=%v): %v", minify, err)
		}
		want, _ := json.Marshal(doc)
		have, _ := json.Marshal(got)
		if !reflect.DeepEqual(want, have) {
			t.Errorf("round trip changed the document (minify=%v)", minify)
		}
	}
}

func TestExportStripEmbeddedData(t *testing.T) {
	doc, err := model.DefaultNewsletter(model.TemplateBriefing)
	if err != nil {
		t.Fatalf("default document: %v", err)
	}

	res, err := Export(doc, Options{StripEmbeddedData: true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(res.HTML, "WSU_NEWSLETTER_DATA") {
		t.Fatalf("stripped export must not carry embedded data")
	}
	if !strings.Contains(res.Filename, "_PRODUCTION") {
		t.Errorf("stripped export filename missing _PRODUCTION: %q", res.Filename)
	}

	if _, err := Import(res.HTML); !errors.Is(err, ErrNoEmbeddedData) {
		t.Fatalf("importing stripped export: got %v, want ErrNoEmbeddedData", err)
	}
}

func TestExportMinifyKeepsTextContent(t *testing.T) {
	doc, err := model.DefaultNewsletter(model.TemplateFF)
	if err != nil {
		t.Fatalf("default document: %v", err)
	}
	doc.Masthead.Title = "Spaced   Out   Title"

	res, err := Export(doc, Options{Minify: true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(res.HTML, "Spaced   Out   Title") {
		t.Errorf("minify must not collapse whitespace inside text content")
	}
	if !strings.Contains(res.HTML, "</tr></table>") {
		t.Errorf("minify must collapse whitespace between adjacent tags")
	}
}

func TestImportCorruptedBase64(t *testing.T) {
	html := "<html><body><!-- WSU_NEWSLETTER_DATA_B64\n!!!not-base64!!!\n-->\n</body></html>"
	_, err := Import(html)
	if !errors.Is(err, ErrCorruptedData) {
		t.Fatalf("got %v, want ErrCorruptedData", err)
	}
	if errors.Is(err, ErrNoEmbeddedData) {
		t.Fatalf("corrupted payload must not report missing data")
	}
}

func TestImportCorruptedJSON(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("{not json"))
	html := "<html><body><!-- WSU_NEWSLETTER_DATA_B64\n" + payload + "\n-->\n</body></html>"
	if _, err := Import(html); !errors.Is(err, ErrCorruptedData) {
		t.Fatalf("got %v, want ErrCorruptedData", err)
	}
}

func TestImportNoMarker(t *testing.T) {
	if _, err := Import("<html><body><p>plain page</p></body></html>"); !errors.Is(err, ErrNoEmbeddedData) {
		t.Fatalf("got %v, want ErrNoEmbeddedData", err)
	}
}

func TestImportLegacySocialMigration(t *testing.T) {
	legacy := map[string]any{
		"template": "ff",
		"title":    "Legacy Issue",
		"footer": map[string]any{
			"social": map[string]any{
				"facebook":  map[string]any{"url": "url2", "icon": "icon2"},
				"instagram": "url1",
				"myspace":   "url3",
			},
		},
	}
	raw, _ := json.Marshal(legacy)
	html := "<html><body><!-- WSU_NEWSLETTER_DATA:" + string(raw) + " --></body></html>"

	doc, err := Import(html)
	if err != nil {
		t.Fatalf("import legacy: %v", err)
	}

	want := []model.SocialLink{
		{Platform: "Instagram", URL: "url1", Icon: "", Alt: "Instagram"},
		{Platform: "Facebook", URL: "url2", Icon: "icon2", Alt: "Facebook"},
	}
	if !reflect.DeepEqual(doc.Footer.Social, want) {
		t.Fatalf("migrated social = %+v, want %+v", doc.Footer.Social, want)
	}
}

func TestImportLegacyTitleAlignMigration(t *testing.T) {
	legacy := map[string]any{
		"template": "ff",
		"sections": []any{
			map[string]any{
				"key":    "events",
				"title":  "Events",
				"layout": map[string]any{"divider_spacing": float64(12)},
			},
			map[string]any{
				"key":    "deadlines",
				"title":  "Deadlines",
				"layout": map[string]any{"title_align": "center"},
			},
		},
	}
	raw, _ := json.Marshal(legacy)
	html := "<html><body><!-- WSU_NEWSLETTER_DATA:" + string(raw) + " --></body></html>"

	doc, err := Import(html)
	if err != nil {
		t.Fatalf("import legacy: %v", err)
	}
	if got := doc.Sections[0].Layout.TitleAlign; got != "left" {
		t.Errorf("missing title_align must migrate to left, got %q", got)
	}
	if got := doc.Sections[1].Layout.TitleAlign; got != "center" {
		t.Errorf("existing title_align must be preserved, got %q", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		template model.TemplateType
		stripped bool
		want     string
	}{
		{model.TemplateFF, false, "Friday_Focus_2025-10-10.html"},
		{model.TemplateBriefing, false, "Briefing_2025-10-10.html"},
		{model.TemplateLetter, false, "Slate_Campaign_2025-10-10.html"},
		{model.TemplateType("mystery"), false, "Newsletter_2025-10-10.html"},
		{model.TemplateFF, true, "Friday_Focus_2025-10-10_PRODUCTION.html"},
	}
	for _, tc := range cases {
		if got := Filename(tc.template, tc.stripped, now); got != tc.want {
			t.Errorf("Filename(%q, %v) = %q, want %q", tc.template, tc.stripped, got, tc.want)
		}
	}
}

func TestEmbedCommentChunking(t *testing.T) {
	doc, err := model.DefaultNewsletter(model.TemplateFF)
	if err != nil {
		t.Fatalf("default document: %v", err)
	}
	comment, err := embedComment(doc)
	if err != nil {
		t.Fatalf("embedComment: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(comment, "\n"), "\n")
	if lines[0] != "<!-- WSU_NEWSLETTER_DATA_B64" || lines[len(lines)-1] != "-->" {
		t.Fatalf("unexpected comment frame: %q ... %q", lines[0], lines[len(lines)-1])
	}
	for i, line := range lines[1 : len(lines)-1] {
		if len(line) > b64ChunkWidth {
			t.Errorf("payload line %d exceeds %d chars: %d", i, b64ChunkWidth, len(line))
		}
	}
}
