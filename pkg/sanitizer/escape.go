package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy allows no elements at all. Policies are safe for concurrent
// use once built.
var strictPolicy = bluemonday.StrictPolicy()

// Escape escapes <, >, &, ' and " so s can be placed in HTML text or a quoted
// attribute value.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeValid escapes s if valid reports it as well-formed text and returns ""
// otherwise, so malformed byte sequences never reach the page.
func EscapeValid(s string, valid func(string) bool) string {
	if valid != nil && !valid(s) {
		return ""
	}
	return Escape(s)
}

// UnescapeHTML reverses Escape.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripTags removes every HTML element, keeping text content. The result is
// escaped and safe to render.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
