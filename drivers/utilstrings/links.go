package utilstrings

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/goodglamm/g3util/util/sanitize"
)

var (
	// ErrEmptyPattern is returned by SanitizedWithLinks for an empty pattern.
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrEmptyLinkParts is returned by SanitizedWithLinks without link parts.
	ErrEmptyLinkParts = errors.New("link parts are empty")

	// ErrLinkPartsArity is returned when the pattern references a missing part.
	ErrLinkPartsArity = errors.New("pattern references a missing link part")

	rePlaceholder = regexp.MustCompile(`%(?:(\d+)\$)?([sd%])`)
)

type placeholder struct {
	token string
	verb  byte
	index int
}

// SanitizedWithLinks sanitizes pattern down to text and anchors, then
// substitutes parts into its placeholders.
//
// Named entities are decoded before sanitizing. Anchors keep only their
// href, title, rel, target and class attributes. Placeholders are "%s",
// "%d", the positional "%2$s" forms and "%%". Substituted parts are
// markup-escaped, and the result goes through the links policy again so a
// part landing in an href is held to the same URL schemes.
func (t T) SanitizedWithLinks(pattern string, parts ...any) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}
	if len(parts) == 0 {
		return "", ErrEmptyLinkParts
	}
	protected, placeholders := protectPlaceholders(html.UnescapeString(pattern))
	sanitized := sanitize.Links(protected)
	s, err := substitute(sanitized, placeholders, parts)
	if err != nil {
		return "", err
	}
	return sanitize.Links(s), nil
}

// tokenPrefix returns a placeholder token prefix absent from s.
func tokenPrefix(s string) string {
	prefix := "G3PH"
	for strings.Contains(s, prefix) {
		prefix += "Q"
	}
	return prefix
}

// protectPlaceholders swaps placeholders for plain tokens the sanitizer
// leaves untouched, even inside an href.
func protectPlaceholders(s string) (string, []placeholder) {
	var (
		placeholders []placeholder
		next         int
	)
	prefix := tokenPrefix(s)
	s = rePlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		sub := rePlaceholder.FindStringSubmatch(m)
		p := placeholder{
			token: fmt.Sprintf("%s%dX", prefix, len(placeholders)),
			verb:  sub[2][0],
		}
		switch {
		case p.verb == '%':
		case sub[1] != "":
			n, _ := strconv.Atoi(sub[1])
			p.index = n - 1
		default:
			p.index = next
			next++
		}
		placeholders = append(placeholders, p)
		return p.token
	})
	return s, placeholders
}

func substitute(s string, placeholders []placeholder, parts []any) (string, error) {
	oldnew := make([]string, 0, 2*len(placeholders))
	for _, p := range placeholders {
		var value string
		switch p.verb {
		case '%':
			value = "%"
		default:
			if p.index < 0 || p.index >= len(parts) {
				return "", errors.Wrapf(ErrLinkPartsArity, "part %d of %d", p.index+1, len(parts))
			}
			if p.verb == 'd' {
				value = strconv.Itoa(cast.ToInt(parts[p.index]))
			} else {
				value = html.EscapeString(cast.ToString(parts[p.index]))
			}
		}
		oldnew = append(oldnew, p.token, value)
	}
	return strings.NewReplacer(oldnew...).Replace(s), nil
}
