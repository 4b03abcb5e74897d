package report

import (
	"fmt"
	"strings"

	"newsletter-studio/internal/model"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one accessibility or content finding.
type Issue struct {
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	Location string `json:"location" yaml:"location"`
	Fix      string `json:"fix" yaml:"fix"`
}

// ValidationResult aggregates lint findings with per-severity counts.
type ValidationResult struct {
	Issues   []Issue `json:"issues" yaml:"issues"`
	Total    int     `json:"total" yaml:"total"`
	Errors   int     `json:"errors" yaml:"errors"`
	Warnings int     `json:"warnings" yaml:"warnings"`
}

// Validate lints a document: missing alt text is an error, placeholder links
// and long preheaders are warnings. Nothing here blocks rendering.
func Validate(n *model.Newsletter) ValidationResult {
	var issues []Issue

	if n.Masthead.BannerAlt == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Message:  "Banner image missing alt text",
			Location: "Masthead",
			Fix:      "Add descriptive alt text for screen readers",
		})
	}

	if len(n.Masthead.Preheader) > 90 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Preheader text is %d characters (optimal: 40-90)", len(n.Masthead.Preheader)),
			Location: "Masthead",
			Fix:      "Shorten preheader for better inbox preview",
		})
	}

	for _, section := range n.Sections {
		location := section.Title
		if location == "" {
			location = "Untitled Section"
		}

		for _, card := range section.Cards {
			title := cardTitle(card)

			for _, link := range card.Base().Links {
				if link.URL == "#" || link.URL == "" {
					issues = append(issues, Issue{
						Severity: SeverityWarning,
						Message:  fmt.Sprintf("Placeholder link in '%s'", title),
						Location: location,
						Fix:      "Replace '#' with actual URL or remove link",
					})
				}
			}
			for _, link := range card.Base().Links {
				if link.Label == "" {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Message:  fmt.Sprintf("Link missing label in '%s'", title),
						Location: location,
						Fix:      "Add descriptive link text",
					})
				}
			}

			if rc, ok := card.(*model.ResourceCard); ok && rc.ShowIcon && rc.IconAlt == "" {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Message:  fmt.Sprintf("Resource icon missing alt text in '%s'", title),
					Location: location,
					Fix:      "Add descriptive alt text for icon",
				})
			}
		}
	}

	for i, link := range n.Footer.Social {
		if strings.TrimSpace(link.Alt) == "" {
			platform := link.Platform
			if platform == "" {
				platform = "Unknown"
			}
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Social link #%d (%s) missing alt text", i+1, platform),
				Location: "Footer",
				Fix:      "Add descriptive alt text for accessibility",
			})
		}
	}

	result := ValidationResult{Issues: issues, Total: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			result.Errors++
		case SeverityWarning:
			result.Warnings++
		}
	}
	return result
}

// cardTitle names a card for lint messages. Letter cards have no title, so
// the greeting stands in.
func cardTitle(card model.Card) string {
	switch c := card.(type) {
	case *model.StandardCard:
		if c.Title != "" {
			return c.Title
		}
	case *model.EventCard:
		if c.Title != "" {
			return c.Title
		}
	case *model.ResourceCard:
		if c.Title != "" {
			return c.Title
		}
	case *model.CTACard:
		if c.Title != "" {
			return c.Title
		}
	case *model.LetterCard:
		if c.Greeting != "" {
			return c.Greeting
		}
	}
	return "Untitled Card"
}
