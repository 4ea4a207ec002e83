// Package utilarrays is the "arrays" driver: helpers for ordered
// sequences and ordered mappings.
package utilarrays

import (
	"regexp"

	"github.com/iancoleman/orderedmap"

	"github.com/goodglamm/g3util/core/driver"
)

type (
	// T is the arrays utility. It is stateless.
	T struct{}
)

const (
	// DriverName is the registry name of the driver.
	DriverName = "arrays"
)

var (
	// Driver registers T as a shared instance.
	Driver = driver.NewSingleton(DriverName, func() any { return New() })

	reNumeric = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
)

func New() *T {
	return &T{}
}

// Inject returns a copy of seq with value inserted before the element at
// position. A position <= 0, or past the end of seq, appends value.
func Inject[E any](value E, position int, seq []E) []E {
	l := make([]E, 0, len(seq)+1)
	if position <= 0 || position >= len(seq) {
		l = append(l, seq...)
		return append(l, value)
	}
	l = append(l, seq[:position]...)
	l = append(l, value)
	return append(l, seq[position:]...)
}

// Inject is the untyped form of the package Inject function.
func (t T) Inject(value any, position int, seq []any) []any {
	return Inject(value, position, seq)
}

// IsNumeric returns true if the key reads as a decimal number.
func IsNumeric(key string) bool {
	return reNumeric.MatchString(key)
}

// IsAssociative returns false for an empty mapping, else true unless
// every key is numeric. A single non-numeric key is enough.
func (t T) IsAssociative(m *orderedmap.OrderedMap) bool {
	if m == nil {
		return false
	}
	return isAssociative(m.Keys())
}

// IsAssociativeMap is IsAssociative for a plain map.
func (t T) IsAssociativeMap(m map[string]any) bool {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return isAssociative(keys)
}

func isAssociative(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !IsNumeric(k) {
			return true
		}
	}
	return false
}

// MergeSelective merges maps into a copy of the first one, keeping only
// the keys of the first map. Later maps win, key per key, in argument
// order. A nil value never overwrites.
//
// With no map an empty map is returned. With a single map that same map
// is returned, not a copy.
func (t T) MergeSelective(maps ...*orderedmap.OrderedMap) *orderedmap.OrderedMap {
	switch len(maps) {
	case 0:
		return orderedmap.New()
	case 1:
		return maps[0]
	}
	merged := orderedmap.New()
	if maps[0] == nil {
		return merged
	}
	keys := maps[0].Keys()
	for _, k := range keys {
		v, _ := maps[0].Get(k)
		merged.Set(k, v)
	}
	for _, current := range maps[1:] {
		if current == nil {
			continue
		}
		for _, k := range keys {
			if v, ok := current.Get(k); ok && v != nil {
				merged.Set(k, v)
			}
		}
	}
	return merged
}
