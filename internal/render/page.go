// Package render turns a newsletter document into email-client-safe,
// table-based HTML. Everything here is pure string computation: no I/O, no
// shared state, safe to call concurrently.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"newsletter-studio/internal/model"
	"newsletter-studio/internal/styles"
)

//go:embed page.tmpl
var pageTpl string

var compiledPage = template.Must(template.New("page").Parse(pageTpl))

type pageData struct {
	EmailCSS       string
	StyleReset     string
	StyleTable     string
	BgLight        string
	BgWhite        string
	BorderMedium   string
	ContainerWidth int
	Preheader      string
	ViewInBrowser  string
	Masthead       string
	Sections       string
	Footer         string
}

// RenderPreheader emits the hidden inbox-preview text block.
func RenderPreheader(text string) string {
	return fmt.Sprintf(`<div style="display:none; font-size:1px; color:#ffffff; line-height:1px; max-height:0; max-width:0; opacity:0; overflow:hidden;">
%s
</div>`, esc(text))
}

// RenderViewInBrowser emits the fixed "View in Browser" row. The href is the
// Slate merge-tag literal, not a real URL.
func RenderViewInBrowser() string {
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s background-color:%s;">
  <tr>
    <td align="center" style="padding:12px 0; background-color:%s;">
      <table cellpadding="0" cellspacing="0" role="presentation" width="600" class="container" style="%s">
        <tr>
          <td style="text-align:center; font-size:13px; color:%s;">
            <a href="%s" style="%s">View in Browser</a>
          </td>
        </tr>
      </table>
    </td>
  </tr>
</table>`, styles.Table, styles.BgLight, styles.BgLight, styles.Table, styles.TextMuted, styles.SlateViewInBrowser, styles.Link)
}

// RenderMasthead renders the banner/title/tagline block.
func RenderMasthead(m model.Masthead, containerWidth int) string {
	bannerAlign := orStr(m.BannerAlign, model.AlignCenter)
	bannerBox := model.Box{Top: 20}
	if m.BannerPadding != nil {
		bannerBox = model.Box{}
		merge(&bannerBox, m.BannerPadding)
	}
	heroShow := m.HeroShow == nil || *m.HeroShow

	bannerHTML := ""
	if heroShow && m.BannerURL != "" {
		img := fmt.Sprintf(`<img src="%s" alt="%s" width="450" style="%s width:100%%; max-width:450px; display:inline-block;" />`,
			esc(m.BannerURL), esc(m.BannerAlt), styles.Image)
		if m.HeroLink != "" {
			bannerHTML = fmt.Sprintf(`<a href="%s">%s</a>`, esc(m.HeroLink), img)
		} else {
			bannerHTML = img
		}
	}

	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s background-color:%s;">
  <tr>
    <td align="center">
      <table cellpadding="0" cellspacing="0" role="presentation" width="%d" class="container" style="%s background-color:%s; border-left:1px solid %s; border-right:1px solid %s;">
        <tr>
          <td style="padding:%dpx %dpx %dpx %dpx; text-align:%s; background-color:%s;">
            %s
          </td>
        </tr>
        <tr>
          <td style="padding:16px 24px 4px; font-size:13px; line-height:1.2; color:%s; text-transform:uppercase; letter-spacing:0.35em; text-align:center;">
            %s
          </td>
        </tr>
        <tr>
          <td style="padding:0 24px 12px; font-size:14px; line-height:1.5; color:%s; text-align:center;">
            <em>%s</em>
          </td>
        </tr>
      </table>
    </td>
  </tr>
</table>`,
		styles.Table, styles.BgLight,
		containerWidth, styles.Table, styles.BgWhite, styles.BorderMedium, styles.BorderMedium,
		bannerBox.Top, bannerBox.Right, bannerBox.Bottom, bannerBox.Left, bannerAlign, styles.BgWhite,
		bannerHTML,
		styles.TextMuted, esc(m.Title),
		styles.TextMuted, esc(m.Tagline))
}

func socialIcons(social []model.SocialLink) string {
	var cells strings.Builder
	for _, link := range social {
		url := strings.TrimSpace(link.URL)
		icon := strings.TrimSpace(link.Icon)
		alt := strings.TrimSpace(link.Alt)
		if alt == "" {
			alt = strings.TrimSpace(link.Platform)
		}
		if alt == "" {
			alt = "Social Media Link"
		}
		if url == "" || icon == "" {
			continue
		}
		cells.WriteString(fmt.Sprintf(`
          <td style="%s">
            <a href="%s" title="%s">
              <img src="%s" alt="%s" width="28" height="28" style="%s" />
            </a>
          </td>`, styles.SocialIconCell, esc(url), esc(alt), esc(icon), esc(alt), styles.Image))
	}
	return cells.String()
}

func footerSpacing(f model.Footer) (top, bottom, socialTop, socialBottom int) {
	// Presence-based defaulting: an explicit zero is honored here.
	top, bottom, socialTop, socialBottom = 60, 30, 40, 20
	if f.PaddingTop != nil {
		top = *f.PaddingTop
	}
	if f.PaddingBottom != nil {
		bottom = *f.PaddingBottom
	}
	if f.SocialMarginTop != nil {
		socialTop = *f.SocialMarginTop
	}
	if f.SocialMarginBottom != nil {
		socialBottom = *f.SocialMarginBottom
	}
	return
}

func footerAddress(lines []string, textColor string) string {
	if len(lines) == 0 {
		return ""
	}
	addr := ""
	if lines[0] != "" {
		addr = "<strong>" + esc(lines[0]) + "</strong>"
	}
	var rest []string
	for _, line := range lines[1:] {
		rest = append(rest, esc(line))
	}
	if len(rest) > 0 {
		if addr != "" {
			addr += "<br />"
		}
		addr += strings.Join(rest, "<br />")
	}
	return fmt.Sprintf(`<p style="color:%s; font-size:14px; line-height:1.6; margin:0 0 8px 0;">
        %s
      </p>`, textColor, addr)
}

func socialTable(f model.Footer, socialTop, socialBottom int) string {
	icons := socialIcons(f.Social)
	if icons == "" {
		return "<!-- No social links configured -->"
	}
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" style="%s margin:%dpx auto %dpx auto;">
        <tr>%s
        </tr>
      </table>`, styles.Table, socialTop, socialBottom, icons)
}

// RenderFooter renders the standard dark footer: social icons, bolded first
// address line, divider, site link and copyright.
func RenderFooter(f model.Footer) string {
	bgColor := orStr(f.BackgroundColor, styles.TextDark)
	textColor := orStr(f.TextColor, "#cccccc")
	linkColor := orStr(f.LinkColor, "#ffffff")
	top, bottom, socialTop, socialBottom := footerSpacing(f)

	tdStyle := fmt.Sprintf("color:%s; text-align:center; padding:%dpx 20px %dpx 20px;", textColor, top, bottom)
	linkStyle := fmt.Sprintf("color:%s !important; text-decoration:underline;", linkColor)

	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s background-color:%s;">
  <tr>
    <td align="center" style="%s">
      %s

      <!-- Address -->
      %s

      <!-- Divider -->
      <div style="height:1px; background-color:#444444; margin:20px auto; max-width:400px;"></div>

      <!-- Links (Unsubscribe handled by Slate) -->
      <p style="color:%s; font-size:13px; line-height:1.6; margin:15px 0;">
        <a href="%s" data-role="footer-link" style="%s">Graduate School website</a>
      </p>

      <!-- Copyright -->
      <p style="color:#999999; font-size:12px; line-height:1.6; margin:15px 0 0 0;">
        © 2025 Washington State University. All rights reserved.
      </p>
    </td>
  </tr>
</table>`, styles.Table, bgColor, tdStyle,
		socialTable(f, socialTop, socialBottom),
		footerAddress(f.AddressLines, textColor),
		textColor, model.OrgWebsite, linkStyle)
}

// RenderSimpleFooter renders the letter-campaign footer: black-on-white,
// social icons and address only, no site link and no copyright line.
func RenderSimpleFooter(f model.Footer) string {
	bgColor := orStr(f.BackgroundColor, styles.BgWhite)
	textColor := orStr(f.TextColor, "#000000")
	top, bottom, socialTop, socialBottom := footerSpacing(f)

	tdStyle := fmt.Sprintf("color:%s; text-align:center; padding:%dpx 20px %dpx 20px;", textColor, top, bottom)

	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" role="presentation" width="100%%" style="%s background-color:%s;">
  <tr>
    <td align="center" style="%s">
      %s

      <!-- Address -->
      %s
    </td>
  </tr>
</table>`, styles.Table, bgColor, tdStyle,
		socialTable(f, socialTop, socialBottom),
		footerAddress(f.AddressLines, textColor))
}

// usesSimpleFooter reports whether a document takes the simplified footer:
// letter campaigns, or any document whose footer background is white.
func usesSimpleFooter(n *model.Newsletter) bool {
	return n.Template == model.TemplateLetter ||
		strings.EqualFold(n.Footer.BackgroundColor, "#ffffff")
}

// FullEmail renders the complete email document. The stored container width
// is trusted as-is; clamping happens where documents are accepted.
func FullEmail(n *model.Newsletter) (string, error) {
	settings := n.Settings
	containerWidth := orInt(settings.ContainerWidth, model.DefaultContainerWidth)
	sectionSpacing := orInt(settings.SectionSpacing, 24)
	showBorders := settings.ShowSectionBorders == nil || *settings.ShowSectionBorders

	var sections []string
	for i, section := range n.Sections {
		isLast := i == len(n.Sections)-1
		sections = append(sections, RenderSection(section, sectionSpacing, showBorders, &settings, isLast))
	}

	footer := RenderFooter(n.Footer)
	if usesSimpleFooter(n) {
		footer = RenderSimpleFooter(n.Footer)
	}

	data := pageData{
		EmailCSS:       styles.EmailCSS,
		StyleReset:     styles.Reset,
		StyleTable:     styles.Table,
		BgLight:        styles.BgLight,
		BgWhite:        styles.BgWhite,
		BorderMedium:   styles.BorderMedium,
		ContainerWidth: containerWidth,
		Preheader:      RenderPreheader(n.Masthead.Preheader),
		ViewInBrowser:  RenderViewInBrowser(),
		Masthead:       RenderMasthead(n.Masthead, containerWidth),
		Sections:       strings.Join(sections, "\n"),
		Footer:         footer,
	}

	var buf bytes.Buffer
	if err := compiledPage.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
