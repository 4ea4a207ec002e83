package utilinput

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/goodglamm/g3util/util/sanitize"
)

type (
	// Filter selects the validation or sanitization applied to a value.
	Filter int

	// Flag alters the filter behavior. Flags are or-ed.
	Flag int

	// Options are the filter options. The zero value applies the filter
	// with no range, no default and no flags.
	Options struct {
		Flags Flag

		// Default is returned instead of the failure value.
		Default any

		// MinRange and MaxRange bound the int and float validations.
		MinRange *float64
		MaxRange *float64

		// Regexp is required by FilterValidateRegexp.
		Regexp *regexp.Regexp
	}
)

const (
	FilterDefault Filter = iota
	FilterValidateInt
	FilterValidateFloat
	FilterValidateBool
	FilterValidateEmail
	FilterValidateURL
	FilterValidateRegexp
	FilterSanitizeString
	FilterSanitizeNumberInt
	FilterSanitizeSpecialChars

	// FilterUnsafeRaw is an alias of FilterDefault.
	FilterUnsafeRaw = FilterDefault
)

const (
	FlagNullOnFailure Flag = 1 << iota
	FlagRequireArray
	FlagForceArray
	FlagAllowHex
)

var (
	toFilterString = map[Filter]string{
		FilterDefault:              "default",
		FilterValidateInt:          "int",
		FilterValidateFloat:        "float",
		FilterValidateBool:         "bool",
		FilterValidateEmail:        "email",
		FilterValidateURL:          "url",
		FilterValidateRegexp:       "regexp",
		FilterSanitizeString:       "string",
		FilterSanitizeNumberInt:    "number_int",
		FilterSanitizeSpecialChars: "special_chars",
	}
	toFilterID = map[string]Filter{
		"":              FilterDefault,
		"default":       FilterDefault,
		"unsafe_raw":    FilterUnsafeRaw,
		"int":           FilterValidateInt,
		"float":         FilterValidateFloat,
		"bool":          FilterValidateBool,
		"email":         FilterValidateEmail,
		"url":           FilterValidateURL,
		"regexp":        FilterValidateRegexp,
		"string":        FilterSanitizeString,
		"number_int":    FilterSanitizeNumberInt,
		"special_chars": FilterSanitizeSpecialChars,
	}

	reInt         = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	reHex         = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	reFloat       = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	reNotIntChars = regexp.MustCompile(`[^0-9+-]`)
)

// NewFilter allocates a Filter from its string representation, returning
// false for an unknown name.
func NewFilter(s string) (Filter, bool) {
	t, ok := toFilterID[s]
	return t, ok
}

// String implements the Stringer interface
func (t Filter) String() string {
	return toFilterString[t]
}

// Has returns true if all bits of f are set.
func (t Flag) Has(f Flag) bool {
	return t&f == f
}

// Range returns a pointer to v, for use as MinRange or MaxRange.
func Range(v float64) *float64 {
	return &v
}

// Filter returns the filtered value of the variable name in source.
//
// A missing variable returns nil, or false with FlagNullOnFailure. A
// value failing the filter returns opts.Default if set, else false, or
// nil with FlagNullOnFailure.
func (t *T) Filter(source Source, name string, filter Filter, opts Options) any {
	v, ok := t.lookup(source, name)
	if !ok {
		if opts.Flags.Has(FlagNullOnFailure) {
			return false
		}
		return nil
	}
	result, ok := apply(v, filter, opts)
	if !ok {
		t.log.Debug().Msgf("%s %s: filter %s failed", source, name, filter)
		return failure(opts)
	}
	return result
}

// FilterValue applies the filter to a value not read from a table.
func FilterValue(v any, filter Filter, opts Options) any {
	result, ok := apply(v, filter, opts)
	if !ok {
		return failure(opts)
	}
	return result
}

func failure(opts Options) any {
	switch {
	case opts.Default != nil:
		return opts.Default
	case opts.Flags.Has(FlagNullOnFailure):
		return nil
	default:
		return false
	}
}

func apply(v any, filter Filter, opts Options) (any, bool) {
	var l []any
	isArray := true
	switch o := v.(type) {
	case []string:
		l = make([]any, len(o))
		for i, s := range o {
			l[i] = s
		}
	case []any:
		l = o
	default:
		isArray = false
	}
	switch {
	case isArray && !opts.Flags.Has(FlagRequireArray) && !opts.Flags.Has(FlagForceArray):
		return nil, false
	case isArray:
		results := make([]any, len(l))
		for i, e := range l {
			if r, ok := applyScalar(e, filter, opts); ok {
				results[i] = r
			} else {
				results[i] = failure(opts)
			}
		}
		return results, true
	case opts.Flags.Has(FlagRequireArray):
		return nil, false
	}
	r, ok := applyScalar(v, filter, opts)
	if !ok {
		return nil, false
	}
	if opts.Flags.Has(FlagForceArray) {
		return []any{r}, true
	}
	return r, true
}

func applyScalar(v any, filter Filter, opts Options) (any, bool) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, false
	}
	switch filter {
	case FilterDefault:
		return s, true
	case FilterValidateInt:
		return validateInt(s, opts)
	case FilterValidateFloat:
		return validateFloat(s, opts)
	case FilterValidateBool:
		return validateBool(s)
	case FilterValidateEmail:
		return validateEmail(s)
	case FilterValidateURL:
		return validateURL(s)
	case FilterValidateRegexp:
		if opts.Regexp == nil || !opts.Regexp.MatchString(s) {
			return nil, false
		}
		return s, true
	case FilterSanitizeString:
		return sanitize.TextField(s), true
	case FilterSanitizeNumberInt:
		return reNotIntChars.ReplaceAllString(s, ""), true
	case FilterSanitizeSpecialChars:
		return sanitize.SpecialChars(s), true
	default:
		return nil, false
	}
}

func inRange(f float64, opts Options) bool {
	if opts.MinRange != nil && f < *opts.MinRange {
		return false
	}
	if opts.MaxRange != nil && f > *opts.MaxRange {
		return false
	}
	return true
}

func validateInt(s string, opts Options) (any, bool) {
	s = strings.TrimSpace(s)
	var (
		i   int64
		err error
	)
	switch {
	case opts.Flags.Has(FlagAllowHex) && reHex.MatchString(s):
		i, err = strconv.ParseInt(s[2:], 16, 64)
	case reInt.MatchString(s):
		i, err = strconv.ParseInt(s, 10, 64)
	default:
		return nil, false
	}
	if err != nil || !inRange(float64(i), opts) {
		return nil, false
	}
	return int(i), true
}

func validateFloat(s string, opts Options) (any, bool) {
	s = strings.TrimSpace(s)
	if !reFloat.MatchString(s) {
		return nil, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || !inRange(f, opts) {
		return nil, false
	}
	return f, true
}

func validateBool(s string) (any, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no", "":
		return false, true
	default:
		return nil, false
	}
}

func validateEmail(s string) (any, bool) {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return nil, false
	}
	if !strings.Contains(s[strings.LastIndex(s, "@"):], ".") {
		return nil, false
	}
	return s, true
}

func validateURL(s string) (any, bool) {
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return s, true
}
