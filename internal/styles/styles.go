// Package styles holds the fixed WSU brand palette and the inline style
// fragments shared by every renderer. Rendering never reads colors from the
// document; it reads them from here.
package styles

// Brand colors (WSU official).
const (
	Crimson      = "#A60F2D"
	DarkCrimson  = "#8c0d25"
	TextDark     = "#2A3033"
	TextBody     = "#333333"
	TextMuted    = "#5E6A71"
	BgLight      = "#f4f4f4"
	BgCard       = "#f9f9f9"
	BgWhite      = "#ffffff"
	BorderLight  = "#e0e0e0"
	BorderMedium = "#d9d9d9"
)

// Common inline style strings.
const (
	Reset = "margin:0; padding:0; -ms-text-size-adjust:100%; -webkit-text-size-adjust:100%;"

	Table = "border-collapse:collapse; mso-table-lspace:0pt; mso-table-rspace:0pt;"

	Image = "-ms-interpolation-mode:bicubic; border:0; outline:none; text-decoration:none; height:auto; line-height:100%; display:block;"

	Link = "color:" + Crimson + "; text-decoration:underline; font-weight:bold;"

	H2 = "margin:0 0 20px 0; padding:0; font-weight:bold; font-size:22px; line-height:1.3; color:" + Crimson + ";"

	H3 = "margin:0 0 10px 0; padding:0; font-weight:bold; font-size:18px; line-height:1.3; color:" + TextDark + ";"

	BodyText = "font-size:16px; line-height:1.6; color:" + TextBody + "; margin:0 0 12px 0;"

	Meta = "font-size:15px; color:" + TextMuted + "; margin:10px 0; line-height:1.7;"

	LocationLabel = "margin:0 0 5px 0; color:" + Crimson + "; font-weight:bold; font-size:14px;"

	CardAccent = "width:4px; background-color:" + Crimson + ";"

	CardBody = "padding:20px;"

	FooterText = "color:#cccccc; font-size:14px; line-height:1.6; margin:0;"

	SocialIconCell = "padding:0 8px;"
)

// Slate merge-tag literals. Do not change unless the Slate template changes.
const (
	SlateViewInBrowser = "browser"
	SlateOptOut        = "{{ opt_out_link }}"
)

// EmailCSS is the <style> block emitted in the page head.
const EmailCSS = `
html, body {
  margin: 0 !important;
  padding: 0 !important;
  height: 100% !important;
  width: 100% !important;
}
* {
  -ms-text-size-adjust: 100%;
  -webkit-text-size-adjust: 100%;
}
table, td {
  mso-table-lspace: 0pt;
  mso-table-rspace: 0pt;
  border-collapse: collapse;
}
img {
  -ms-interpolation-mode: bicubic;
  border: 0;
  outline: none;
  text-decoration: none;
  height: auto;
  line-height: 100%;
  display: block;
}
a:not([data-role="footer-link"]):not([data-role="cta"]) {
  color: ` + Crimson + ` !important;
  text-decoration: underline;
}
a[x-apple-data-detectors],
.x-apple-data-detectors a {
  color: inherit !important;
  text-decoration: inherit !important;
}
div[style*="margin: 16px 0"] {
  margin: 0 !important;
}
body, table, td {
  font-family: Arial, Helvetica, sans-serif;
}
@media screen and (max-width: 600px) {
  .container {
    width: 100% !important;
  }
  .content {
    padding: 18px 15px 24px !important;
  }
  h2 {
    font-size: 20px !important;
  }
  h3 {
    font-size: 17px !important;
  }
  p, li {
    font-size: 15px !important;
  }
}
`
