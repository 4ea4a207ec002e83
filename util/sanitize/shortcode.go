package sanitize

import (
	"regexp"
	"strings"

	"github.com/goodglamm/g3util/util/stringslice"
)

var reShortcodeTag = regexp.MustCompile(`\[([A-Za-z][A-Za-z0-9_-]*)((?:\s[^\[\]]*)?/?)\]`)

// StripShortcodes removes shortcodes from s. When tags is empty every
// shortcode is removed, else only the named ones.
//
// An enclosing shortcode is removed with its content, up to the matching
// "[/name]". A self-closing or unclosed tag is removed alone. An escaped
// shortcode, written with doubled brackets, loses one bracket pair.
func StripShortcodes(s string, tags ...string) string {
	if !strings.Contains(s, "[") {
		return s
	}
	var b strings.Builder
	for {
		loc := reShortcodeTag.FindStringSubmatchIndex(s)
		if loc == nil {
			b.WriteString(s)
			break
		}
		start, end := loc[0], loc[1]
		name := s[loc[2]:loc[3]]
		if len(tags) > 0 && !stringslice.Has(name, tags) {
			b.WriteString(s[:end])
			s = s[end:]
			continue
		}
		if start > 0 && s[start-1] == '[' && end < len(s) && s[end] == ']' {
			b.WriteString(s[:start-1])
			b.WriteString(s[start:end])
			s = s[end+1:]
			continue
		}
		b.WriteString(s[:start])
		rest := s[end:]
		attrs := strings.TrimSpace(s[loc[4]:loc[5]])
		if !strings.HasSuffix(attrs, "/") {
			closing := "[/" + name + "]"
			if i := strings.Index(rest, closing); i >= 0 {
				rest = rest[i+len(closing):]
			}
		}
		s = rest
	}
	return b.String()
}
