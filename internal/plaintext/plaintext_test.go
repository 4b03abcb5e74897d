package plaintext

import (
	"strings"
	"testing"

	"newsletter-studio/internal/model"
)

func TestGenerateMastheadAndSections(t *testing.T) {
	doc := &model.Newsletter{
		Template: model.TemplateFF,
		Masthead: model.Masthead{
			Title:     "Friday Focus",
			Tagline:   "Weekly updates",
			Preheader: "Quick updates",
		},
		Sections: []model.Section{
			{
				Key:   "deadlines",
				Title: "Deadlines",
				Cards: model.Cards{
					&model.StandardCard{
						Type:  "standard",
						Title: "Thesis Deadline",
						CardBase: model.CardBase{
							BodyHTML: "<p>Submit by <strong>Friday</strong>.</p>",
							Links: []model.Link{
								{Label: "Details", URL: "https://example.com"},
								{Label: "Placeholder", URL: "#"},
							},
						},
					},
				},
			},
		},
	}

	text := Generate(doc)

	if !strings.Contains(text, "FRIDAY FOCUS") {
		t.Errorf("masthead title must be upper-cased: %q", text)
	}
	if !strings.Contains(text, "Weekly updates") || !strings.Contains(text, "Quick updates") {
		t.Errorf("tagline and preheader missing: %q", text)
	}
	if !strings.Contains(text, strings.Repeat("=", 60)) {
		t.Errorf("missing masthead separator: %q", text)
	}
	if !strings.Contains(text, "DEADLINES\n"+strings.Repeat("-", len("Deadlines"))) {
		t.Errorf("section heading must be upper-cased and underlined to title length: %q", text)
	}
	if !strings.Contains(text, "Submit by Friday.") {
		t.Errorf("card body must be tag-stripped: %q", text)
	}
	if !strings.Contains(text, "Details: https://example.com") {
		t.Errorf("real link must be listed: %q", text)
	}
	if strings.Contains(text, "Placeholder") {
		t.Errorf("placeholder # links must be dropped: %q", text)
	}
}

func TestGenerateClosures(t *testing.T) {
	doc := &model.Newsletter{
		Sections: []model.Section{
			{
				Key:   model.ClosuresKey,
				Title: "University Closures",
				Closures: []model.Closure{
					{Date: "November 27, 2025", Reason: "Thanksgiving"},
					{Date: "", Reason: ""},
				},
				Cards: model.Cards{
					&model.StandardCard{Type: "standard", Title: "Ignored"},
				},
			},
		},
	}

	text := Generate(doc)
	if !strings.Contains(text, "• November 27, 2025 - Thanksgiving") {
		t.Errorf("closure bullet missing: %q", text)
	}
	if strings.Contains(text, "Ignored") {
		t.Errorf("closures section must ignore cards: %q", text)
	}
}

func TestGenerateEventMeta(t *testing.T) {
	doc := &model.Newsletter{
		Sections: []model.Section{
			{
				Key:   "events",
				Title: "Events",
				Cards: model.Cards{
					&model.EventCard{
						Type:     "event",
						Title:    "Workshop",
						Location: "Pullman",
						Date:     "Friday",
						Time:     "2:00 PM",
					},
				},
			},
		},
	}

	text := Generate(doc)
	for _, want := range []string{"Location: Pullman", "Date: Friday", "Time: 2:00 PM"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q: %q", want, text)
		}
	}
}

func TestGenerateLetterCard(t *testing.T) {
	doc := &model.Newsletter{
		Template: model.TemplateLetter,
		Sections: []model.Section{
			{
				Key: "letter",
				Cards: model.Cards{
					&model.LetterCard{
						Type:           "letter",
						Greeting:       "Dear Students,",
						Closing:        "Sincerely,",
						SignatureName:  "Tammy D. Barry",
						SignatureLines: []string{"Dean of the Graduate School"},
						CardBase: model.CardBase{
							BodyHTML: "<p>Welcome back.</p>",
						},
					},
				},
			},
		},
	}

	text := Generate(doc)
	for _, want := range []string{
		"Dear Students,",
		"Welcome back.",
		"Sincerely,",
		"Tammy D. Barry",
		"Dean of the Graduate School",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q: %q", want, text)
		}
	}
}

func TestGenerateFooter(t *testing.T) {
	doc := &model.Newsletter{
		Footer: model.Footer{
			AddressLines: []string{"Graduate School", "Pullman, WA 99164"},
			Social: []model.SocialLink{
				{Platform: "Instagram", URL: "https://instagram.com/wsu"},
				{Platform: "", URL: "https://example.com/other"},
				{Platform: "Facebook", URL: ""},
			},
		},
	}

	text := Generate(doc)
	if !strings.Contains(text, "Graduate School\nPullman, WA 99164") {
		t.Errorf("address lines missing: %q", text)
	}
	if !strings.Contains(text, "Instagram: https://instagram.com/wsu") {
		t.Errorf("social line missing: %q", text)
	}
	if !strings.Contains(text, "Social: https://example.com/other") {
		t.Errorf("missing platform must fall back to Social: %q", text)
	}
	if strings.Contains(text, "Facebook") {
		t.Errorf("url-less social entries must be dropped: %q", text)
	}
	if !strings.HasSuffix(text, "Graduate School website: https://gradschool.wsu.edu") {
		t.Errorf("missing trailing site line: %q", text)
	}
}
