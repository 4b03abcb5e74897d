package report

import (
	"strings"
	"testing"

	"newsletter-studio/internal/model"
)

func statsDoc() *model.Newsletter {
	return &model.Newsletter{
		Masthead: model.Masthead{
			BannerURL: "https://example.com/banner.png",
			BannerAlt: "Banner",
		},
		Sections: []model.Section{
			{
				Key:   "deadlines",
				Title: "Deadlines",
				Cards: model.Cards{
					&model.StandardCard{
						Type:  "standard",
						Title: "Thesis",
						CardBase: model.CardBase{
							BodyHTML: "<p>one two three four five</p>",
							Links:    []model.Link{{Label: "A", URL: "https://a.example"}},
						},
					},
					&model.ResourceCard{
						Type:     "resource",
						Title:    "Help",
						ShowIcon: true,
						IconURL:  "https://example.com/icon.png",
						IconAlt:  "Icon",
						CardBase: model.CardBase{
							BodyHTML: "<p>six seven</p>",
						},
					},
				},
			},
			{
				Key:   "closures",
				Title: "Closures",
			},
		},
		Footer: model.Footer{
			Social: []model.SocialLink{
				{Platform: "Instagram", URL: "u", Icon: "i", Alt: "Instagram"},
				{Platform: "Facebook", URL: "u", Icon: "", Alt: "Facebook"},
			},
		},
	}
}

func TestCollectStats(t *testing.T) {
	s := Collect(statsDoc())

	if s.WordCount != 7 {
		t.Errorf("word count = %d, want 7", s.WordCount)
	}
	if s.CardCount != 2 {
		t.Errorf("card count = %d, want 2", s.CardCount)
	}
	if s.SectionCount != 2 {
		t.Errorf("section count = %d, want 2", s.SectionCount)
	}
	// Banner + resource icon + one social icon with an icon URL.
	if s.ImageCount != 3 {
		t.Errorf("image count = %d, want 3", s.ImageCount)
	}
	if s.LinkCount != 1 {
		t.Errorf("link count = %d, want 1", s.LinkCount)
	}
	if s.SocialLinks != 2 {
		t.Errorf("social links = %d, want 2", s.SocialLinks)
	}
	if s.ReadTimeMinutes != 1 {
		t.Errorf("read time = %d, want floor of 1", s.ReadTimeMinutes)
	}
}

func TestCollectReadTimeRounds(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "word"
	}
	doc := &model.Newsletter{
		Sections: []model.Section{
			{
				Key: "one",
				Cards: model.Cards{
					&model.StandardCard{
						Type:     "standard",
						CardBase: model.CardBase{BodyHTML: strings.Join(words, " ")},
					},
				},
			},
		},
	}
	if got := Collect(doc).ReadTimeMinutes; got != 3 {
		t.Fatalf("500 words at 200 wpm should round to 3 minutes, got %d", got)
	}
}

func TestValidateCleanDocument(t *testing.T) {
	res := Validate(statsDoc())
	if res.Total != 0 || len(res.Issues) != 0 {
		t.Fatalf("clean document should lint clean, got %+v", res.Issues)
	}
}

func TestValidateMissingBannerAlt(t *testing.T) {
	doc := statsDoc()
	doc.Masthead.BannerAlt = ""

	res := Validate(doc)
	if res.Errors != 1 {
		t.Fatalf("expected 1 error, got %+v", res)
	}
	issue := res.Issues[0]
	if issue.Severity != SeverityError || issue.Location != "Masthead" {
		t.Errorf("unexpected issue: %+v", issue)
	}
}

func TestValidateLongPreheader(t *testing.T) {
	doc := statsDoc()
	doc.Masthead.Preheader = strings.Repeat("x", 120)

	res := Validate(doc)
	if res.Warnings != 1 {
		t.Fatalf("expected 1 warning, got %+v", res)
	}
	if !strings.Contains(res.Issues[0].Message, "120 characters") {
		t.Errorf("warning should report the length: %q", res.Issues[0].Message)
	}
}

func TestValidateLinkIssues(t *testing.T) {
	doc := statsDoc()
	doc.Sections[0].Cards = model.Cards{
		&model.StandardCard{
			Type:  "standard",
			Title: "Thesis",
			CardBase: model.CardBase{
				Links: []model.Link{
					{Label: "Placeholder", URL: "#"},
					{Label: "", URL: "https://example.com"},
				},
			},
		},
	}

	res := Validate(doc)
	if res.Warnings != 1 || res.Errors != 1 {
		t.Fatalf("expected one warning and one error, got %+v", res)
	}
	for _, issue := range res.Issues {
		if !strings.Contains(issue.Message, "'Thesis'") {
			t.Errorf("issue should name the card: %q", issue.Message)
		}
	}
}

func TestValidateResourceIconAlt(t *testing.T) {
	doc := statsDoc()
	doc.Sections[0].Cards = model.Cards{
		&model.ResourceCard{
			Type:     "resource",
			Title:    "Help",
			ShowIcon: true,
			IconURL:  "https://example.com/icon.png",
		},
	}

	res := Validate(doc)
	if res.Errors != 1 {
		t.Fatalf("expected 1 error, got %+v", res)
	}
	if !strings.Contains(res.Issues[0].Message, "Resource icon missing alt text") {
		t.Errorf("unexpected message: %q", res.Issues[0].Message)
	}
}

func TestValidateSocialAlt(t *testing.T) {
	doc := statsDoc()
	doc.Footer.Social = []model.SocialLink{
		{Platform: "Instagram", URL: "u", Alt: ""},
		{Platform: "", URL: "u", Alt: " "},
	}

	res := Validate(doc)
	if res.Warnings != 2 {
		t.Fatalf("expected 2 warnings, got %+v", res)
	}
	if !strings.Contains(res.Issues[0].Message, "#1 (Instagram)") {
		t.Errorf("warning should number the entry: %q", res.Issues[0].Message)
	}
	if !strings.Contains(res.Issues[1].Message, "#2 (Unknown)") {
		t.Errorf("missing platform should report Unknown: %q", res.Issues[1].Message)
	}
}

func TestValidateLetterCardUsesGreeting(t *testing.T) {
	doc := &model.Newsletter{
		Masthead: model.Masthead{BannerAlt: "ok"},
		Sections: []model.Section{
			{
				Key: "letter",
				Cards: model.Cards{
					&model.LetterCard{
						Type:     "letter",
						Greeting: "Dear Students,",
						CardBase: model.CardBase{
							Links: []model.Link{{Label: "Go", URL: "#"}},
						},
					},
				},
			},
		},
	}

	res := Validate(doc)
	if res.Warnings != 1 {
		t.Fatalf("expected 1 warning, got %+v", res)
	}
	if !strings.Contains(res.Issues[0].Message, "'Dear Students,'") {
		t.Errorf("letter issues should name the greeting: %q", res.Issues[0].Message)
	}
	if res.Issues[0].Location != "Untitled Section" {
		t.Errorf("untitled section fallback missing: %q", res.Issues[0].Location)
	}
}
