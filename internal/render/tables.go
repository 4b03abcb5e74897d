package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsletter-studio/internal/model"
	"newsletter-studio/internal/styles"
)

// Table styling fallbacks, matching the editor controls.
const (
	defaultTableBorderStyle    = "light"
	defaultTableBorderColor    = styles.BorderMedium
	defaultTableFontSize       = 16
	defaultTableHeaderBg       = styles.BgLight
	defaultTableUnderlineColor = styles.BorderMedium
)

// tableBorderWidth maps the named border styles to pixel widths.
func tableBorderWidth(style string) int {
	switch style {
	case "none":
		return 0
	case "medium":
		return 2
	case "bold":
		return 3
	default: // "light" and anything unrecognized
		return 1
	}
}

// styleBodyTables injects email-safe inline styles into any <table> embedded
// in a card's rich-text body, governed by the card's table_* overrides. Email
// clients ignore stylesheet rules inside rich-text tables, so every cell
// needs its border, padding and font inline.
//
// Bodies without a table pass through untouched (the parser normalizes
// markup, so it only runs when there is work to do).
func styleBodyTables(bodyHTML string, ts model.TableStyle) string {
	if !strings.Contains(bodyHTML, "<table") {
		return bodyHTML
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		return bodyHTML
	}

	borderWidth := tableBorderWidth(orStr(ts.BorderStyle, defaultTableBorderStyle))
	borderColor := orStr(ts.BorderColor, defaultTableBorderColor)
	fontSize := orInt(ts.FontSize, defaultTableFontSize)
	headerBg := orStr(ts.HeaderBgColor, defaultTableHeaderBg)
	underline := ts.HeaderUnderline
	underlineColor := orStr(ts.HeaderUnderlineColor, defaultTableUnderlineColor)

	cellStyle := fmt.Sprintf("padding:8px; font-size:%dpx; line-height:1.5;", fontSize)
	if borderWidth > 0 {
		cellStyle += fmt.Sprintf(" border:%dpx solid %s;", borderWidth, borderColor)
	}

	headerStyle := cellStyle + fmt.Sprintf(" background-color:%s; font-weight:bold; text-align:left;", headerBg)
	if underline > 0 {
		headerStyle += fmt.Sprintf(" border-bottom:%dpx solid %s;", underline, underlineColor)
	}

	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		appendStyle(t, fmt.Sprintf("border-collapse:collapse; width:100%%; font-size:%dpx;", fontSize))
		t.Find("td").Each(func(_ int, cell *goquery.Selection) {
			appendStyle(cell, cellStyle)
		})
		t.Find("th").Each(func(_ int, cell *goquery.Selection) {
			appendStyle(cell, headerStyle)
		})
	})

	body := doc.Find("body")
	out, err := body.Html()
	if err != nil {
		return bodyHTML
	}
	return out
}

// appendStyle adds declarations after any author-set inline style.
func appendStyle(s *goquery.Selection, style string) {
	existing := strings.TrimSpace(s.AttrOr("style", ""))
	if existing != "" && !strings.HasSuffix(existing, ";") {
		existing += ";"
	}
	if existing != "" {
		existing += " "
	}
	s.SetAttr("style", existing+style)
}
