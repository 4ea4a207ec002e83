package utilarrays

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap(kv ...any) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

func TestInject(t *testing.T) {
	seq := []any{"a", "b", "c"}
	tests := map[string]struct {
		position int
		expected []any
	}{
		"zero appends":     {0, []any{"a", "b", "c", "x"}},
		"negative appends": {-1, []any{"a", "b", "c", "x"}},
		"first split":      {1, []any{"a", "x", "b", "c"}},
		"last split":       {2, []any{"a", "b", "x", "c"}},
		"past the end":     {10, []any{"a", "b", "c", "x"}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, New().Inject("x", test.position, seq))
		})
	}
	t.Run("input is not mutated", func(t *testing.T) {
		assert.Equal(t, []any{"a", "b", "c"}, seq)
	})
	t.Run("typed", func(t *testing.T) {
		assert.Equal(t, []int{1, 9, 2}, Inject(9, 1, []int{1, 2}))
		assert.Equal(t, []int{9}, Inject(9, 0, nil))
	})
}

func TestIsAssociative(t *testing.T) {
	a := New()
	assert.False(t, a.IsAssociative(orderedmap.New()))
	assert.False(t, a.IsAssociative(nil))
	assert.True(t, a.IsAssociative(newMap("0", "a", "x", "b")))
	assert.False(t, a.IsAssociative(newMap("0", "a", "1", "b")))
	assert.False(t, a.IsAssociative(newMap("1.5", "a", "-2", "b")))
	assert.True(t, a.IsAssociative(newMap("name", "a")))

	assert.False(t, a.IsAssociativeMap(map[string]any{}))
	assert.True(t, a.IsAssociativeMap(map[string]any{"0": 1, "k": 2}))
	assert.False(t, a.IsAssociativeMap(map[string]any{"0": 1, "1": 2}))
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "12", "-3", "+4", "1.5", ".5", "1e3", " 7"} {
		assert.True(t, IsNumeric(s), s)
	}
	for _, s := range []string{"", "a", "1a", "0x1A", "NaN", "Inf", "1.2.3"} {
		assert.False(t, IsNumeric(s), s)
	}
}

func TestMergeSelective(t *testing.T) {
	a := New()

	t.Run("no map", func(t *testing.T) {
		m := a.MergeSelective()
		require.NotNil(t, m)
		assert.Empty(t, m.Keys())
	})

	t.Run("single map is returned as is", func(t *testing.T) {
		in := newMap("a", 1)
		assert.Same(t, in, a.MergeSelective(in))
	})

	t.Run("keys of the first map only", func(t *testing.T) {
		first := newMap("a", 1, "b", 2)
		m := a.MergeSelective(first, newMap("a", 9, "c", 99))
		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, _ := m.Get("a")
		assert.Equal(t, 9, v)
		v, _ = m.Get("b")
		assert.Equal(t, 2, v)
		_, ok := m.Get("c")
		assert.False(t, ok)

		v, _ = first.Get("a")
		assert.Equal(t, 1, v, "first map is not mutated")
	})

	t.Run("later maps win in order", func(t *testing.T) {
		m := a.MergeSelective(
			newMap("a", 1, "b", 2, "c", 3),
			newMap("a", 10, "b", 20),
			newMap("a", 100, "b", nil),
		)
		got := map[string]any{}
		for _, k := range m.Keys() {
			got[k], _ = m.Get(k)
		}
		expected := map[string]any{"a": 100, "b": 20, "c": 3}
		assert.Empty(t, cmp.Diff(expected, got))
	})
}
