package locator

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goodglamm/g3util/util/funcopt"
)

type (
	// Loader loads a symbol, returning false if it does not handle it.
	Loader interface {
		Load(symbol string) (bool, error)
	}

	// SymbolLoaderFunc loads a symbol under a registered prefix, without
	// path resolution.
	SymbolLoaderFunc func(symbol string) (bool, error)

	// Chain asks its loaders in registration order, until one loads the
	// symbol.
	Chain struct {
		mu       sync.RWMutex
		loaders  []Loader
		loaded   *loadedSet
		loadFunc LoadFunc
		log      zerolog.Logger
	}

	prefixLoader struct {
		prefix string
		fn     SymbolLoaderFunc
	}
)

// NewChain allocates an empty chain. The WithLoadFunc and WithLogger
// options are passed to the locators created by Register.
func NewChain(opts ...funcopt.O) (*Chain, error) {
	// the options are written for *T, collect them on a template locator
	tmpl := &T{
		log: log.Logger.With().Str("pkg", "locator").Logger(),
	}
	if err := funcopt.Apply(tmpl, opts...); err != nil {
		return nil, err
	}
	t := &Chain{
		loaded:   newLoadedSet(),
		loadFunc: tmpl.loadFunc,
		log:      tmpl.log,
	}
	return t, nil
}

// Register appends a locator for prefix rooted at baseDir.
func (t *Chain) Register(prefix, baseDir string) (*T, error) {
	l, err := New(prefix, baseDir, WithLoadFunc(t.loadFunc), WithLogger(t.log.With().Str("prefix", strings.Trim(prefix, Separator)).Logger()), withLoaded(t.loaded))
	if err != nil {
		return nil, err
	}
	t.add(l)
	return l, nil
}

// RegisterLoader appends an explicit loader function for the symbols
// under prefix.
func (t *Chain) RegisterLoader(prefix string, fn SymbolLoaderFunc) error {
	prefix = strings.Trim(prefix, Separator)
	if prefix == "" {
		return errors.Wrap(ErrEmptyNamespace, "register loader")
	}
	if fn == nil {
		return errors.New("register loader: nil loader function")
	}
	t.add(prefixLoader{prefix: prefix, fn: fn})
	return nil
}

func (t *Chain) add(l Loader) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loaders = append(t.loaders, l)
}

// Len returns the number of registered loaders.
func (t *Chain) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.loaders)
}

// Autoload asks each loader for symbol, stopping at the first one
// loading it. A symbol no loader handles returns false and no error.
func (t *Chain) Autoload(symbol string) (bool, error) {
	if strings.Trim(symbol, Separator) == "" {
		return false, nil
	}
	t.mu.RLock()
	loaders := append([]Loader{}, t.loaders...)
	t.mu.RUnlock()
	for _, l := range loaders {
		ok, err := l.Load(symbol)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	t.log.Debug().Msgf("%s: no loader", symbol)
	return false, nil
}

// Loaded returns the paths loaded by the chain locators, in load order.
func (t *Chain) Loaded() []string {
	return t.loaded.values()
}

func (t prefixLoader) Load(symbol string) (bool, error) {
	symbol = strings.Trim(symbol, Separator)
	if !strings.HasPrefix(symbol, t.prefix) {
		return false, nil
	}
	return t.fn(symbol)
}
