package g3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v, err := ParsedVersion()
	require.NoError(t, err)
	assert.Equal(t, "beta", v.Prerelease())
	assert.Equal(t, []int{0, 1, 0}, v.Segments())
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		constraint string
		ok         bool
	}{
		{"= 0.1-beta", true},
		{">= 0.1-alpha", true},
		{"> 0.1-beta", false},
		{">= 1.0", false},
	}
	for _, c := range cases {
		ok, err := Satisfies(c.constraint)
		require.NoError(t, err, c.constraint)
		assert.Equal(t, c.ok, ok, c.constraint)
	}
	_, err := Satisfies("not a constraint")
	assert.Error(t, err)
}
