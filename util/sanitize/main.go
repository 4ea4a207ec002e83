// Package sanitize provides the text and markup sanitizers the string and
// input drivers delegate to: tag stripping, shortcode stripping, text
// field cleanup and a links-only HTML policy.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// LinkAttrs are the attributes kept on anchors by Links.
	LinkAttrs = []string{"href", "title", "rel", "target", "class"}

	strict = bluemonday.StrictPolicy()
	links  = newLinksPolicy()

	reBreaks  = regexp.MustCompile(`[\r\n\t ]+`)
	reOctets  = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	reSpaces  = regexp.MustCompile(`\s+`)
	reKeyChar = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

func newLinksPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs(LinkAttrs...).OnElements("a")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("mailto", "http", "https")
	return p
}

// StripAllTags removes every markup tag, dropping the content of script
// and style elements. Entities are decoded in the result. When
// removeBreaks is set, runs of line breaks, tabs and spaces collapse to a
// single space.
func StripAllTags(s string, removeBreaks bool) string {
	s = html.UnescapeString(strict.Sanitize(s))
	if removeBreaks {
		s = reBreaks.ReplaceAllString(s, " ")
	}
	return strings.TrimSpace(s)
}

// TextField cleans a single line of user text: invalid UTF-8 yields "",
// tags are stripped, percent-encoded octets removed, whitespace collapsed
// and the result trimmed.
func TextField(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	if strings.Contains(s, "<") {
		s = StripAllTags(s, false)
	}
	s = reOctets.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Key trims s and removes every character outside [A-Za-z0-9_].
func Key(s string) string {
	return reKeyChar.ReplaceAllString(strings.TrimSpace(s), "")
}

// SpecialChars escapes the characters significant in markup.
func SpecialChars(s string) string {
	return html.EscapeString(s)
}

// Links sanitizes s allowing only anchor elements, with the LinkAttrs
// attributes. Every other tag is removed and text is escaped.
func Links(s string) string {
	return links.Sanitize(s)
}
