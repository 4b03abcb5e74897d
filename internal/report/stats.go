// Package report computes content statistics and accessibility lint results
// for a newsletter document. Both are simple field walks, not part of the
// rendering pipeline.
package report

import (
	"math"
	"regexp"
	"strings"

	"newsletter-studio/internal/model"
)

var tagRe = regexp.MustCompile(`<[^>]+>`)

// wordsPerMinute is the reading speed used for the read-time estimate.
const wordsPerMinute = 200

// Stats summarizes a document's content.
type Stats struct {
	WordCount       int `json:"word_count" yaml:"word_count"`
	ReadTimeMinutes int `json:"read_time_minutes" yaml:"read_time_minutes"`
	ImageCount      int `json:"image_count" yaml:"image_count"`
	LinkCount       int `json:"link_count" yaml:"link_count"`
	CardCount       int `json:"card_count" yaml:"card_count"`
	SectionCount    int `json:"section_count" yaml:"section_count"`
	SocialLinks     int `json:"social_links" yaml:"social_links"`
}

// Collect counts words, images, links and cards across the document. Read
// time is at least one minute.
func Collect(n *model.Newsletter) Stats {
	var s Stats

	if n.Masthead.BannerURL != "" {
		s.ImageCount++
	}

	for _, section := range n.Sections {
		for _, card := range section.Cards {
			s.CardCount++

			base := card.Base()
			text := tagRe.ReplaceAllString(base.BodyHTML, "")
			s.WordCount += len(strings.Fields(text))

			if rc, ok := card.(*model.ResourceCard); ok && rc.ShowIcon && rc.IconURL != "" {
				s.ImageCount++
			}

			s.LinkCount += len(base.Links)
		}
	}

	for _, link := range n.Footer.Social {
		if link.Icon != "" {
			s.ImageCount++
		}
	}
	s.SocialLinks = len(n.Footer.Social)
	s.SectionCount = len(n.Sections)

	s.ReadTimeMinutes = int(math.Round(float64(s.WordCount) / wordsPerMinute))
	if s.ReadTimeMinutes < 1 {
		s.ReadTimeMinutes = 1
	}

	return s
}
