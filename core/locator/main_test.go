package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, p string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte("<?php\n"), 0644))
}

func TestNew(t *testing.T) {
	l, err := New(`\Acme\Pkg\`, `C:\srv\pkg\\`)
	require.NoError(t, err)
	assert.Equal(t, `Acme\Pkg`, l.Prefix())
	assert.Equal(t, "C:/srv/pkg", l.BaseDir())

	for _, c := range [][2]string{{"", "/srv"}, {`\\`, "/srv"}, {"Acme", ""}, {"Acme", "///"}} {
		_, err := New(c[0], c[1])
		assert.Truef(t, errors.Is(err, ErrEmptyNamespace), "%q %q", c[0], c[1])
	}
}

func TestPath(t *testing.T) {
	l, err := New(`Acme\Pkg`, "/srv/pkg")
	require.NoError(t, err)
	cases := []struct {
		symbol string
		path   string
		ok     bool
	}{
		{`Acme\Pkg\Utilities\Some_Thing`, "/srv/pkg/classes/utilities/class-some-thing.php", true},
		{`\Acme\Pkg\Foo`, "/srv/pkg/classes/class-foo.php", true},
		{`Acme\Pkg\Traits\Singleton`, "/srv/pkg/classes/traits/trait-singleton.php", true},
		{`Acme\Pkg\Interfaces\Utility_Driver`, "/srv/pkg/classes/interfaces/interface-utility-driver.php", true},
		{`Other\Pkg\Foo`, "", false},
		{`Acme\Pkg`, "", false},
		{"", "", false},
	}
	for _, c := range cases {
		p, ok := l.Path(c.symbol)
		assert.Equal(t, c.ok, ok, c.symbol)
		assert.Equal(t, c.path, p, c.symbol)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "classes", "utilities", "class-strings.php"))

	var calls []string
	l, err := New(`Acme\Pkg`, dir, WithLoadFunc(func(p string) error {
		calls = append(calls, p)
		return nil
	}))
	require.NoError(t, err)

	t.Run("loads once", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			ok, err := l.Load(`Acme\Pkg\Utilities\Strings`)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Len(t, calls, 1)
		assert.Equal(t, []string{filepath.Join(dir, "classes", "utilities", "class-strings.php")}, l.Loaded())
	})
	t.Run("soft misses", func(t *testing.T) {
		for _, symbol := range []string{`Acme\Pkg\Utilities\Missing`, `Other\Strings`, ""} {
			ok, err := l.Load(symbol)
			require.NoError(t, err)
			assert.False(t, ok, symbol)
		}
		assert.Len(t, calls, 1)
	})
}

func TestLoadError(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "classes", "class-broken.php"))
	errBroken := errors.New("broken")
	fail := true
	l, err := New(`Acme`, dir, WithLoadFunc(func(p string) error {
		if fail {
			return errBroken
		}
		return nil
	}))
	require.NoError(t, err)

	ok, err := l.Load(`Acme\Broken`)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, errBroken))
	assert.Empty(t, l.Loaded())

	fail = false
	ok, err = l.Load(`Acme\Broken`)
	require.NoError(t, err)
	assert.True(t, ok)
}
