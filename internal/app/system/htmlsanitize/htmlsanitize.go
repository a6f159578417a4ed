// Package htmlsanitize strips dangerous markup from user-supplied HTML
// before it is stored or rendered.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy   = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Sanitize keeps common user-generated-content markup (paragraphs,
// emphasis, links with safe schemes) and removes scripts, event handler
// attributes, and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// PlainText strips all markup, returning only text content. The result
// is unescaped so it is safe as ordinary template data, which escapes on
// output.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}
