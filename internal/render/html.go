package render

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// esc escapes text for insertion into HTML. It is applied at every
// text-insertion point except body_html, which is the one field allowed to
// carry raw markup from the rich-text editor.
func esc(s string) string {
	return escaper.Replace(s)
}

// orInt mirrors the editor's `value || default` defaulting: zero re-defaults.
func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// orStr mirrors `value || default` for strings.
func orStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
