package render

import (
	"fmt"
	"strings"

	"newsletter-studio/internal/model"
	"newsletter-studio/internal/styles"
)

// sectionStart opens a section container and, when the title is non-blank,
// emits its <h2>. Dividers are drawn as a bottom border unless disabled at
// the section or document level, and never on the last section.
func sectionStart(title string, layout model.SectionLayout, showBorder, isLast bool) string {
	spacing := orInt(layout.DividerSpacing, 24)
	titleAlign := orStr(layout.TitleAlign, model.AlignLeft)
	if !model.ValidAlign(titleAlign) {
		titleAlign = model.AlignLeft
	}
	paddingTop := orInt(layout.PaddingTop, 18)
	paddingBottom := orInt(layout.PaddingBottom, 28)
	dividerEnabled := layout.DividerEnabled == nil || *layout.DividerEnabled
	dividerThickness := orInt(layout.DividerThickness, 2)
	dividerColor := orStr(layout.DividerColor, styles.BorderLight)

	border := ""
	if showBorder && dividerEnabled && !isLast {
		border = fmt.Sprintf("border-bottom:%dpx solid %s;", dividerThickness, dividerColor)
	}

	containerStyle := fmt.Sprintf("%s padding-top:%dpx; padding-bottom:%dpx; %s", styles.Table, paddingTop, paddingBottom, border)
	if layout.BackgroundColor != "" {
		containerStyle += fmt.Sprintf(" background-color:%s;", layout.BackgroundColor)
	}
	if layout.BorderRadius > 0 {
		containerStyle += fmt.Sprintf(" border-radius:%dpx;", layout.BorderRadius)
	}

	if strings.TrimSpace(title) == "" {
		return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s">
  <tr>
    <td>`, containerStyle)
	}

	h2Style := fmt.Sprintf("%s margin-top:%dpx; text-align:%s;", styles.H2, spacing, titleAlign)

	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s">
  <tr>
    <td>
      <h2 style="%s">%s</h2>`, containerStyle, h2Style, esc(title))
}

func sectionEnd() string {
	return `    </td>
  </tr>
</table>`
}

// renderClosures renders the flat closures bullet list, skipping entries
// where both fields are empty.
func renderClosures(closures []model.Closure) string {
	var items []string
	for _, c := range closures {
		date := strings.TrimSpace(c.Date)
		reason := strings.TrimSpace(c.Reason)
		if date != "" || reason != "" {
			items = append(items, fmt.Sprintf("<li>%s – %s</li>", esc(date), esc(reason)))
		}
	}
	if len(items) == 0 {
		return ""
	}

	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s background-color:%s; margin-bottom:20px;">
  <tr>
    <td style="%s">
      <ul style="margin:10px 0 0 0; padding:0 0 0 20px; color:%s; font-size:16px; line-height:1.6;">
        %s
      </ul>
    </td>
  </tr>
</table>`, styles.Table, styles.BgCard, styles.CardBody, styles.TextBody, strings.Join(items, "\n"))
}

// RenderSection renders one full section. The literal key "closures" selects
// the closures list renderer and ignores any cards; every other key iterates
// cards.
func RenderSection(section model.Section, spacing int, showBorder bool, settings *model.Settings, isLast bool) string {
	layout := section.Layout
	if layout.DividerSpacing == 0 {
		layout.DividerSpacing = spacing
	}

	if section.Key == model.ClosuresKey {
		return sectionStart(section.Title, layout, showBorder, isLast) +
			"\n" + renderClosures(section.Closures) + "\n" + sectionEnd()
	}

	fragments := make([]string, 0, len(section.Cards))
	for _, card := range section.Cards {
		fragments = append(fragments, RenderCard(card, &section, settings))
	}

	return sectionStart(section.Title, layout, showBorder, isLast) +
		"\n" + strings.Join(fragments, "\n") + "\n" + sectionEnd()
}
