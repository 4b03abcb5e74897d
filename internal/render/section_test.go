package render

import (
	"strings"
	"testing"

	"newsletter-studio/internal/model"
)

func TestSectionDividerOnLastSection(t *testing.T) {
	section := model.Section{Key: "deadlines", Title: "Deadlines"}

	withDivider := RenderSection(section, 24, true, nil, false)
	if !strings.Contains(withDivider, "border-bottom:2px solid #e0e0e0") {
		t.Errorf("non-last section should draw a divider: %q", withDivider)
	}

	last := RenderSection(section, 24, true, nil, true)
	if strings.Contains(last, "border-bottom") {
		t.Errorf("last section must not draw a divider: %q", last)
	}
}

func TestSectionDividerDisabled(t *testing.T) {
	off := false
	section := model.Section{
		Key:    "deadlines",
		Title:  "Deadlines",
		Layout: model.SectionLayout{DividerEnabled: &off},
	}
	html := RenderSection(section, 24, true, nil, false)
	if strings.Contains(html, "border-bottom") {
		t.Errorf("section-level divider_enabled=false must suppress the border: %q", html)
	}

	section.Layout.DividerEnabled = nil
	html = RenderSection(section, 24, false, nil, false)
	if strings.Contains(html, "border-bottom") {
		t.Errorf("document-level show_section_borders=false must suppress the border: %q", html)
	}
}

func TestSectionBlankTitleSuppressesHeading(t *testing.T) {
	section := model.Section{Key: "untitled", Title: "   "}
	html := RenderSection(section, 24, true, nil, false)
	if strings.Contains(html, "<h2") {
		t.Errorf("blank title must not render an h2: %q", html)
	}
	if !strings.Contains(html, "<table") {
		t.Errorf("container table must still render: %q", html)
	}
}

func TestSectionInvalidTitleAlign(t *testing.T) {
	section := model.Section{
		Key:    "events",
		Title:  "Events",
		Layout: model.SectionLayout{TitleAlign: "diagonal"},
	}
	html := RenderSection(section, 24, true, nil, false)
	if !strings.Contains(html, "text-align:left") {
		t.Fatalf("invalid title_align must fall back to left: %q", html)
	}
}

func TestSectionDividerSpacingFallback(t *testing.T) {
	section := model.Section{Key: "events", Title: "Events"}
	html := RenderSection(section, 40, true, nil, false)
	if !strings.Contains(html, "margin-top:40px") {
		t.Errorf("zero divider_spacing must fall back to the global spacing: %q", html)
	}

	section.Layout.DividerSpacing = 12
	html = RenderSection(section, 40, true, nil, false)
	if !strings.Contains(html, "margin-top:12px") {
		t.Errorf("explicit divider_spacing must win: %q", html)
	}
}

func TestClosuresSectionIgnoresCards(t *testing.T) {
	section := model.Section{
		Key:   model.ClosuresKey,
		Title: "University Closures",
		Closures: []model.Closure{
			{Date: "November 27, 2025", Reason: "Thanksgiving"},
			{Date: "", Reason: ""},
			{Date: "December 25, 2025", Reason: "Winter Break"},
		},
		Cards: model.Cards{
			&model.StandardCard{Type: "standard", Title: "Should Not Appear"},
		},
	}
	html := RenderSection(section, 24, true, nil, false)

	if strings.Count(html, "<li>") != 2 {
		t.Errorf("empty closure rows must be skipped: %q", html)
	}
	if !strings.Contains(html, "November 27, 2025 – Thanksgiving") {
		t.Errorf("closure line missing: %q", html)
	}
	if strings.Contains(html, "Should Not Appear") {
		t.Errorf("closures section must ignore cards: %q", html)
	}
}

func TestCardsSectionIgnoresClosures(t *testing.T) {
	section := model.Section{
		Key:   "events",
		Title: "Events",
		Cards: model.Cards{
			&model.StandardCard{Type: "standard", Title: "Card One"},
		},
		Closures: []model.Closure{
			{Date: "November 27, 2025", Reason: "Thanksgiving"},
		},
	}
	html := RenderSection(section, 24, true, nil, false)
	if !strings.Contains(html, "Card One") {
		t.Errorf("card missing: %q", html)
	}
	if strings.Contains(html, "Thanksgiving") {
		t.Errorf("non-closures section must ignore closures: %q", html)
	}
}

func TestSectionBackgroundAndRadius(t *testing.T) {
	section := model.Section{
		Key:   "events",
		Title: "Events",
		Layout: model.SectionLayout{
			BackgroundColor: "#f4f4f4",
			BorderRadius:    8,
		},
	}
	html := RenderSection(section, 24, true, nil, false)
	if !strings.Contains(html, "background-color:#f4f4f4") {
		t.Errorf("section background missing: %q", html)
	}
	if !strings.Contains(html, "border-radius:8px") {
		t.Errorf("section border radius missing: %q", html)
	}
}
