// Package converters converts command line strings to typed values.
package converters

import (
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type (
	NumType   string
	ShlexType string
)

var (
	Num   NumType
	Shlex ShlexType
)

func (t NumType) ToInt64(s string) (int64, error) {
	return cast.ToInt64E(strings.TrimSpace(s))
}

func (t NumType) ToFloat(s string) (float64, error) {
	return cast.ToFloat64E(strings.TrimSpace(s))
}

// ToSlice splits s like a posix shell does.
func (t ShlexType) ToSlice(s string) ([]string, error) {
	l, err := shlex.Split(s, true)
	if err != nil {
		return nil, errors.Wrapf(err, "split %q", s)
	}
	return l, nil
}

// ToAny returns s as an int64, a float64 or a bool when it parses as one,
// else s itself. Values are tried in that order.
func ToAny(s string) any {
	if i, err := Num.ToInt64(s); err == nil {
		return i
	}
	if f, err := Num.ToFloat(s); err == nil {
		return f
	}
	switch s {
	case "true", "false":
		return s == "true"
	}
	return s
}

// ToAnys applies ToAny to each element of l.
func ToAnys(l []string) []any {
	r := make([]any, len(l))
	for i, s := range l {
		r[i] = ToAny(s)
	}
	return r
}
