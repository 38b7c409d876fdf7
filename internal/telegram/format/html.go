// Package format contains text helpers for Telegram HTML-mode messages.
package format

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes user-supplied text for safe interpolation into
// HTML-mode messages. Telegram only recognizes &, < and > as markup
// significant, so quotes are left alone.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// Bold wraps text in HTML bold tags without escaping it.
func Bold(text string) string {
	return "<b>" + text + "</b>"
}

// Link renders an HTML anchor with an escaped label.
func Link(label, url string) string {
	return `<a href="` + url + `">` + EscapeHTML(label) + "</a>"
}
