// Package locator maps namespaced symbols to files on disk and loads each
// file once.
//
// A symbol like `Acme\Pkg\Utilities\Some_Thing`, under the namespace
// prefix `Acme\Pkg` rooted at /srv/pkg, maps to
// /srv/pkg/classes/utilities/class-some-thing.php. Symbols whose path
// contains "traits" or "interfaces" use the "trait" or "interface" file
// prefix instead of "class".
package locator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goombaio/orderedset"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goodglamm/g3util/util/file"
	"github.com/goodglamm/g3util/util/funcopt"
)

type (
	// LoadFunc loads the file at path.
	LoadFunc func(path string) error

	// T is a locator for one namespace prefix.
	T struct {
		prefix   string
		baseDir  string
		loadFunc LoadFunc
		loaded   *loadedSet
		log      zerolog.Logger
	}

	loadedSet struct {
		mu sync.Mutex
		s  *orderedset.OrderedSet
	}
)

const (
	// Separator separates the namespace segments of a symbol.
	Separator = `\`

	classesDir = "classes"
	fileExt    = ".php"
)

var (
	// ErrEmptyNamespace is returned by New when the prefix or the base
	// directory is empty once normalized.
	ErrEmptyNamespace = errors.New("both namespace prefix and base directory are required")
)

// WithLoadFunc sets the function called to load a located file. The
// default only records the path as loaded.
func WithLoadFunc(fn LoadFunc) funcopt.O {
	return funcopt.F(func(i interface{}) error {
		t := i.(*T)
		t.loadFunc = fn
		return nil
	})
}

// WithLogger sets the logger reporting loads.
func WithLogger(l zerolog.Logger) funcopt.O {
	return funcopt.F(func(i interface{}) error {
		t := i.(*T)
		t.log = l
		return nil
	})
}

func withLoaded(l *loadedSet) funcopt.O {
	return funcopt.F(func(i interface{}) error {
		t := i.(*T)
		t.loaded = l
		return nil
	})
}

func newLoadedSet() *loadedSet {
	return &loadedSet{s: orderedset.NewOrderedSet()}
}

// New allocates a locator for symbols under prefix, with files rooted at
// baseDir.
func New(prefix, baseDir string, opts ...funcopt.O) (*T, error) {
	prefix = strings.Trim(prefix, Separator)
	baseDir = strings.TrimRight(strings.ReplaceAll(baseDir, `\`, "/"), "/")
	if prefix == "" || baseDir == "" {
		return nil, errors.Wrapf(ErrEmptyNamespace, "prefix %q base dir %q", prefix, baseDir)
	}
	t := &T{
		prefix:  prefix,
		baseDir: baseDir,
		log:     log.Logger.With().Str("pkg", "locator").Str("prefix", prefix).Logger(),
	}
	if err := funcopt.Apply(t, opts...); err != nil {
		return nil, err
	}
	if t.loaded == nil {
		t.loaded = newLoadedSet()
	}
	return t, nil
}

func (t *T) Prefix() string {
	return t.prefix
}

func (t *T) BaseDir() string {
	return t.baseDir
}

// Path returns the file path of symbol, and false if symbol is not under
// the locator prefix.
func (t *T) Path(symbol string) (string, bool) {
	symbol = strings.Trim(symbol, Separator)
	if symbol == "" || !strings.HasPrefix(symbol, t.prefix) {
		return "", false
	}
	rest := strings.ToLower(strings.Trim(symbol[len(t.prefix):], Separator))
	if rest == "" {
		return "", false
	}
	rest = strings.ReplaceAll(rest, "_", "-")
	l := strings.Split(rest, Separator)
	dirs := strings.Join(l, "/")
	token := "class"
	switch {
	case strings.Contains(dirs, "traits"):
		token = "trait"
	case strings.Contains(dirs, "interfaces"):
		token = "interface"
	}
	l[len(l)-1] = token + "-" + l[len(l)-1]
	return fmt.Sprintf("%s/%s/%s%s", t.baseDir, classesDir, strings.Join(l, "/"), fileExt), true
}

// Load loads the file of symbol if it is under the locator prefix and
// exists. It returns true if the file is loaded, now or by a previous
// call. Errors returned by the load function are returned wrapped.
func (t *T) Load(symbol string) (bool, error) {
	p, ok := t.Path(symbol)
	if !ok {
		return false, nil
	}
	if !file.DoesExist(p) {
		t.log.Debug().Msgf("%s: %s not found", symbol, p)
		return false, nil
	}
	return t.loaded.once(p, t.loadFunc, t.log)
}

// once calls fn for p unless p is already in the set. The path is marked
// before calling fn, so a load function resolving other symbols can not
// reenter the same file.
func (t *loadedSet) once(p string, fn LoadFunc, l zerolog.Logger) (bool, error) {
	t.mu.Lock()
	if t.s.Contains(p) {
		t.mu.Unlock()
		return true, nil
	}
	t.s.Add(p)
	t.mu.Unlock()
	if fn != nil {
		if err := fn(p); err != nil {
			t.mu.Lock()
			t.s.Remove(p)
			t.mu.Unlock()
			return false, errors.Wrapf(err, "load %s", p)
		}
	}
	l.Debug().Msgf("loaded %s", p)
	return true, nil
}

func (t *loadedSet) values() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	l := make([]string, 0, t.s.Size())
	for _, v := range t.s.Values() {
		l = append(l, v.(string))
	}
	return l
}

// Loaded returns the paths loaded through the locator, in load order.
func (t *T) Loaded() []string {
	return t.loaded.values()
}
