package render

import (
	"fmt"
	"strings"

	"newsletter-studio/internal/model"
	"newsletter-studio/internal/styles"
)

// RenderCard turns one card into an HTML fragment, dispatching on the
// concrete variant. Unrecognized type strings decode as StandardCard, so
// they take the standard path.
func RenderCard(card model.Card, section *model.Section, settings *model.Settings) string {
	switch c := card.(type) {
	case *model.EventCard:
		return renderEventCard(c, section, settings)
	case *model.ResourceCard:
		return renderResourceCard(c, section, settings)
	case *model.CTACard:
		return renderCTACard(c, section, settings)
	case *model.LetterCard:
		return renderLetterCard(c, section, settings)
	case *model.StandardCard:
		return renderStandardCard(c, section, settings)
	default:
		return ""
	}
}

// cardStyle builds the outer table style from the card-level overrides, all
// with fixed fallbacks.
func cardStyle(b *model.CardBase) string {
	bg := orStr(b.BackgroundColor, styles.BgCard)
	spacing := orInt(b.SpacingBottom, 20)
	borderWidth := b.BorderWidth
	borderColor := orStr(b.BorderColor, styles.BorderLight)

	style := fmt.Sprintf("%s background-color:%s; margin-bottom:%dpx;", styles.Table, bg, spacing)
	if borderWidth > 0 {
		style += fmt.Sprintf(" border:%dpx solid %s;", borderWidth, borderColor)
	}
	if b.BorderRadius > 0 {
		style += fmt.Sprintf(" border-radius:%dpx;", b.BorderRadius)
	}
	return style
}

func paddingStyle(box model.Box) string {
	return fmt.Sprintf("padding:%dpx %dpx %dpx %dpx;", box.Top, box.Right, box.Bottom, box.Left)
}

// cardMeta renders the Location/Date/Time paragraph, omitting it entirely
// when all three fields are empty.
func cardMeta(location, date, timeStr string) string {
	var items []string
	if location != "" {
		items = append(items, "<strong>Location:</strong> "+esc(location))
	}
	if date != "" {
		items = append(items, "<strong>Date:</strong> "+esc(date))
	}
	if timeStr != "" {
		items = append(items, "<strong>Time:</strong> "+esc(timeStr))
	}
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf(`<p style="%s">%s</p>`, styles.Meta, strings.Join(items, "<br />"))
}

// cardLinks renders a card's link list: a bulleted list for two or more
// qualifying links, bare anchor text for exactly one, nothing for zero.
// A link qualifies only when both label and url are non-empty after trimming.
func cardLinks(links []model.Link) string {
	var anchors []string
	for _, link := range links {
		label := strings.TrimSpace(link.Label)
		url := strings.TrimSpace(link.URL)
		if label != "" && url != "" {
			anchors = append(anchors, fmt.Sprintf(`<a href="%s" style="%s">%s</a>`, esc(url), styles.Link, esc(label)))
		}
	}
	if len(anchors) == 0 {
		return ""
	}
	if len(anchors) >= 2 {
		var items strings.Builder
		for _, a := range anchors {
			items.WriteString("<li>" + a + "</li>")
		}
		return fmt.Sprintf(`<ul style="margin: 8px 0 0 0; padding-left: 20px; font-size: 14px; line-height: 1.8;">%s</ul>`, items.String())
	}
	return strings.Join(anchors, " | ")
}

func bodyDiv(b *model.CardBase) string {
	if b.BodyHTML == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="%s">%s</div>`, styles.BodyText, styleBodyTables(b.BodyHTML, b.TableStyle))
}

func joinParts(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// accentCardShell wraps content in the common accent-bar card table.
func accentCardShell(b *model.CardBase, box model.Box, content string) string {
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s">
  <tr>
    <td style="%s"></td>
    <td style="%s">
      %s
    </td>
  </tr>
</table>`, cardStyle(b), styles.CardAccent, paddingStyle(box), content)
}

// plainCardShell wraps content in a single-cell card table with no accent
// bar.
func plainCardShell(b *model.CardBase, box model.Box, content string) string {
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s">
  <tr>
    <td style="%s">
      %s
    </td>
  </tr>
</table>`, cardStyle(b), paddingStyle(box), content)
}

func renderStandardCard(card *model.StandardCard, section *model.Section, settings *model.Settings) string {
	box := ResolvePadding(card, section, settings)

	var parts []string
	if card.Title != "" {
		parts = append(parts, fmt.Sprintf(`<h3 style="%s">%s</h3>`, styles.H3, esc(card.Title)))
	}
	parts = append(parts,
		bodyDiv(&card.CardBase),
		cardMeta(card.Location, card.Date, card.Time),
		cardLinks(card.Links),
	)

	return accentCardShell(&card.CardBase, box, joinParts(parts))
}

func renderEventCard(card *model.EventCard, section *model.Section, settings *model.Settings) string {
	box := ResolvePadding(card, section, settings)

	var parts []string
	// Location is promoted to a bold label above the title.
	if card.Location != "" {
		parts = append(parts, fmt.Sprintf(`<p style="%s">%s</p>`, styles.LocationLabel, esc(card.Location)))
	}
	if card.Title != "" {
		parts = append(parts, fmt.Sprintf(`<h3 style="%s">%s</h3>`, styles.H3, esc(card.Title)))
	}
	parts = append(parts, bodyDiv(&card.CardBase))

	var meta []string
	if card.Date != "" {
		meta = append(meta, esc(card.Date))
	}
	if card.Time != "" {
		meta = append(meta, esc(card.Time))
	}
	if len(meta) > 0 {
		parts = append(parts, fmt.Sprintf(`<p style="%s">%s</p>`, styles.Meta, strings.Join(meta, "<br />")))
	}

	parts = append(parts, cardLinks(card.Links))

	return accentCardShell(&card.CardBase, box, joinParts(parts))
}

func renderResourceCard(card *model.ResourceCard, section *model.Section, settings *model.Settings) string {
	box := ResolvePadding(card, section, settings)

	var parts []string
	if card.Title != "" {
		parts = append(parts, fmt.Sprintf(`<h3 style="%s">%s</h3>`, styles.H3, esc(card.Title)))
	}
	parts = append(parts,
		bodyDiv(&card.CardBase),
		cardMeta(card.Location, card.Date, card.Time),
		cardLinks(card.Links),
	)
	textContent := joinParts(parts)

	if !card.ShowIcon || card.IconURL == "" {
		return plainCardShell(&card.CardBase, box, textContent)
	}

	iconSize := orInt(card.IconSize, 80)
	iconStyle := fmt.Sprintf("width:%dpx; height:%dpx; border-radius:6px; %s", iconSize, iconSize, styles.Image)
	iconCellStyle := fmt.Sprintf("width:%dpx; padding-right:15px; vertical-align:middle; text-align:center;", iconSize)
	iconHTML := fmt.Sprintf(`<img src="%s" alt="%s" width="%d" height="%d" style="%s" />`,
		esc(card.IconURL), esc(card.IconAlt), iconSize, iconSize, iconStyle)

	inner := fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s">
        <tr>
          <td style="%s">
            %s
          </td>
          <td style="vertical-align:middle;">
            %s
          </td>
        </tr>
      </table>`, styles.Table, iconCellStyle, iconHTML, textContent)

	return plainCardShell(&card.CardBase, box, inner)
}

// renderCTACard renders a call-to-action box. Only the first link becomes
// the button; any further links are ignored.
func renderCTACard(card *model.CTACard, section *model.Section, settings *model.Settings) string {
	box := ResolvePadding(card, section, settings)

	buttonLabel := "Learn more"
	buttonURL := "#"
	if len(card.Links) > 0 {
		if card.Links[0].Label != "" {
			buttonLabel = card.Links[0].Label
		}
		if card.Links[0].URL != "" {
			buttonURL = card.Links[0].URL
		}
	}

	bg := orStr(card.ButtonBgColor, styles.Crimson)
	textColor := orStr(card.ButtonTextColor, "#ffffff")
	padV := orInt(card.ButtonPaddingVertical, 12)
	padH := orInt(card.ButtonPaddingHorizontal, 32)
	radius := orInt(card.ButtonBorderRadius, 10)

	border := "none"
	if card.ButtonBorderWidth > 0 {
		border = fmt.Sprintf("%dpx solid %s", card.ButtonBorderWidth, orStr(card.ButtonBorderColor, styles.DarkCrimson))
	}

	width, display := "auto", "inline-block"
	if card.ButtonFullWidth {
		width, display = "100%", "block"
	}

	buttonAlign := orStr(card.ButtonAlignment, model.AlignCenter)
	if !model.ValidAlign(buttonAlign) {
		buttonAlign = model.AlignCenter
	}

	textAlign := orStr(card.TextAlignment, model.AlignLeft)
	if !model.ValidAlign(textAlign) {
		textAlign = model.AlignLeft
	}

	buttonStyle := fmt.Sprintf("background-color:%s !important; border-radius:%dpx; border:%s; color:%s !important; "+
		"display:%s; font-weight:bold; font-size:16px; line-height:20px; text-align:center; text-decoration:none; "+
		"padding:%dpx %dpx; margin-top:24px; margin-bottom:8px; width:%s;",
		bg, radius, border, textColor, display, padV, padH, width)

	content := fmt.Sprintf(`<h2 style="%s margin:0 0 16px 0; text-align:%s;">%s</h2>
      <div style="%s margin:0 0 8px 0; text-align:%s;">%s</div>
      <div style="text-align: %s;">
        <a href="%s" data-role="cta" style="%s">%s</a>
      </div>`,
		styles.H2, textAlign, esc(card.Title),
		styles.BodyText, textAlign, styleBodyTables(card.BodyHTML, card.TableStyle),
		buttonAlign,
		esc(buttonURL), buttonStyle, esc(buttonLabel))

	return plainCardShell(&card.CardBase, box, content)
}

// renderLetterCard renders the personal-letter variant: greeting, body,
// closing and a signature block. No title, no accent bar, no meta line.
func renderLetterCard(card *model.LetterCard, section *model.Section, settings *model.Settings) string {
	box := ResolvePadding(card, section, settings)

	var parts []string
	if card.Greeting != "" {
		parts = append(parts, fmt.Sprintf(`<p style="%s">%s</p>`, styles.BodyText, esc(card.Greeting)))
	}
	parts = append(parts, bodyDiv(&card.CardBase))
	if card.Closing != "" {
		parts = append(parts, fmt.Sprintf(`<p style="%s margin:20px 0 12px 0;">%s</p>`, styles.BodyText, esc(card.Closing)))
	}

	var sig []string
	if card.SignatureImageURL != "" {
		width := orInt(card.SignatureImageWidth, 220)
		sig = append(sig, fmt.Sprintf(`<img src="%s" alt="%s" width="%d" style="%s max-width:%dpx; margin-bottom:8px;" />`,
			esc(card.SignatureImageURL), esc(card.SignatureImageAlt), width, styles.Image, width))
	}
	if card.SignatureName != "" {
		sig = append(sig, fmt.Sprintf(`<p style="%s margin:0;"><strong>%s</strong></p>`, styles.BodyText, esc(card.SignatureName)))
	}
	for _, line := range card.SignatureLines {
		if line != "" {
			sig = append(sig, fmt.Sprintf(`<p style="%s margin:0;">%s</p>`, styles.Meta, esc(line)))
		}
	}
	if len(sig) > 0 {
		parts = append(parts, strings.Join(sig, "\n"))
	}

	parts = append(parts, cardLinks(card.Links))

	return plainCardShell(&card.CardBase, box, joinParts(parts))
}
