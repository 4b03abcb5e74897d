// Package plaintext derives a plain-text digest from a newsletter document,
// independent of HTML rendering.
package plaintext

import (
	"regexp"
	"strings"

	"newsletter-studio/internal/model"
)

var tagRe = regexp.MustCompile(`<[^>]+>`)

// stripTags removes HTML tags with a regex. Entities are left as-is.
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// Generate walks the document and produces the plain-text projection:
// upper-cased masthead title, per-section dashed headings, tag-stripped card
// bodies with meta lines and non-placeholder links, then the footer address
// and social list.
func Generate(n *model.Newsletter) string {
	var parts []string

	if n.Masthead.Title != "" {
		parts = append(parts, strings.ToUpper(n.Masthead.Title))
	}
	if n.Masthead.Tagline != "" {
		parts = append(parts, n.Masthead.Tagline)
	}
	if n.Masthead.Preheader != "" {
		parts = append(parts, n.Masthead.Preheader)
	}
	parts = append(parts, "\n"+strings.Repeat("=", 60)+"\n")

	for _, section := range n.Sections {
		if section.Title != "" {
			parts = append(parts, "\n"+strings.ToUpper(section.Title)+"\n"+strings.Repeat("-", len(section.Title))+"\n")
		}
		if section.Key == model.ClosuresKey {
			for _, c := range section.Closures {
				date := strings.TrimSpace(c.Date)
				reason := strings.TrimSpace(c.Reason)
				if date != "" || reason != "" {
					parts = append(parts, "• "+date+" - "+reason)
				}
			}
			continue
		}
		for _, card := range section.Cards {
			parts = append(parts, renderCard(card)...)
			parts = append(parts, "")
		}
	}

	parts = append(parts, "\n"+strings.Repeat("=", 60)+"\n")
	parts = append(parts, n.Footer.AddressLines...)
	for _, link := range n.Footer.Social {
		platform := link.Platform
		if platform == "" {
			platform = "Social"
		}
		if link.URL != "" {
			parts = append(parts, platform+": "+link.URL)
		}
	}

	parts = append(parts, "\nGraduate School website: "+model.OrgWebsite)
	return strings.Join(parts, "\n")
}

func renderCard(card model.Card) []string {
	if lc, ok := card.(*model.LetterCard); ok {
		return renderLetterCard(lc)
	}

	var parts []string
	switch c := card.(type) {
	case *model.StandardCard:
		parts = titledCard(c.Title, &c.CardBase, c.Location, c.Date, c.Time)
	case *model.EventCard:
		parts = titledCard(c.Title, &c.CardBase, c.Location, c.Date, c.Time)
	case *model.ResourceCard:
		parts = titledCard(c.Title, &c.CardBase, c.Location, c.Date, c.Time)
	case *model.CTACard:
		parts = titledCard(c.Title, &c.CardBase, "", "", "")
	}
	return parts
}

func titledCard(title string, b *model.CardBase, location, date, timeStr string) []string {
	var parts []string
	if title != "" {
		parts = append(parts, "\n"+title)
	}
	if b.BodyHTML != "" {
		parts = append(parts, stripTags(b.BodyHTML))
	}
	if location != "" {
		parts = append(parts, "Location: "+location)
	}
	if date != "" {
		parts = append(parts, "Date: "+date)
	}
	if timeStr != "" {
		parts = append(parts, "Time: "+timeStr)
	}
	parts = append(parts, links(b.Links)...)
	return parts
}

// Letter cards project greeting/body/closing/signature instead of title and
// meta lines.
func renderLetterCard(c *model.LetterCard) []string {
	var parts []string
	if c.Greeting != "" {
		parts = append(parts, "\n"+c.Greeting)
	}
	if c.BodyHTML != "" {
		parts = append(parts, stripTags(c.BodyHTML))
	}
	if c.Closing != "" {
		parts = append(parts, c.Closing)
	}
	if c.SignatureName != "" {
		parts = append(parts, c.SignatureName)
	}
	for _, line := range c.SignatureLines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	parts = append(parts, links(c.Links)...)
	return parts
}

func links(ls []model.Link) []string {
	var parts []string
	for _, link := range ls {
		label := strings.TrimSpace(link.Label)
		url := strings.TrimSpace(link.URL)
		if label != "" && url != "" && url != "#" {
			parts = append(parts, label+": "+url)
		}
	}
	return parts
}
