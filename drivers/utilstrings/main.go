// Package utilstrings is the "strings" driver: multibyte safe string
// predicates, replacement, word counting and sanitizing.
package utilstrings

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/util/sanitize"
)

type (
	// T is the strings utility. It is stateless.
	T struct{}
)

const (
	// DriverName is the registry name of the driver.
	DriverName = "strings"
)

var (
	// Driver registers T as a shared instance.
	Driver = driver.NewSingleton(DriverName, func() any { return New() })

	reNameSeparators = regexp.MustCompile(`[\s\-_]+`)
	reName           = regexp.MustCompile(`^\w+$`)
)

func New() *T {
	return &T{}
}

// IsEmpty returns true if s holds nothing but whitespace, separator and
// control code points.
func (t T) IsEmpty(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.In(r, unicode.Z, unicode.C) {
			continue
		}
		return false
	}
	return true
}

// IsUnicode returns true if s is valid UTF-8 and not plain ASCII.
func (t T) IsUnicode(s string) bool {
	return isUnicode(s)
}

func isUnicode(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return utf8.ValidString(s)
		}
	}
	return false
}

// LeadingSlashIt returns s with exactly one leading slash.
func (t T) LeadingSlashIt(s string) string {
	return "/" + t.UnleadingSlashIt(s)
}

// UnleadingSlashIt returns s stripped of all its leading slashes and
// backslashes.
func (t T) UnleadingSlashIt(s string) string {
	return strings.TrimLeft(s, `/\`)
}

// IsName returns true if s, once stripped of its whitespace, hyphens and
// underscores, is made of word characters only.
func (t T) IsName(s string) bool {
	s = reNameSeparators.ReplaceAllString(s, "")
	return reName.MatchString(s)
}

// SanitizedKey returns s trimmed and stripped of every character outside
// [A-Za-z0-9_].
func (t T) SanitizedKey(s string) string {
	return sanitize.Key(s)
}
