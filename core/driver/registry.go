package driver

import (
	"strings"
	"sync"
	"unicode"

	"github.com/golang-collections/collections/set"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goodglamm/g3util/util/funcopt"
	"github.com/goodglamm/g3util/util/xmap"
)

type (
	entry struct {
		mode     Mode
		instance any
		driver   Instancer
	}

	// Registry holds the registered drivers by name.
	Registry struct {
		mu       sync.RWMutex
		entries  map[string]entry
		reserved *set.Set
		state    State
		log      zerolog.Logger
	}
)

// ReservedNames can not be used as driver names.
var ReservedNames = []string{"g3", "bootstrap"}

// WithReservedNames adds names to the reserved driver names.
func WithReservedNames(names ...string) funcopt.O {
	return funcopt.F(func(i interface{}) error {
		t := i.(*Registry)
		for _, name := range names {
			t.reserved.Insert(name)
		}
		return nil
	})
}

// WithLogger sets the logger the registry reports registrations to.
func WithLogger(l zerolog.Logger) funcopt.O {
	return funcopt.F(func(i interface{}) error {
		t := i.(*Registry)
		t.log = l
		return nil
	})
}

// NewRegistry allocates an empty registry.
func NewRegistry(opts ...funcopt.O) (*Registry, error) {
	t := &Registry{
		entries:  make(map[string]entry),
		reserved: set.New(),
		log:      log.Logger.With().Str("pkg", "driver").Logger(),
	}
	for _, name := range ReservedNames {
		t.reserved.Insert(name)
	}
	if err := funcopt.Apply(t, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// State returns the lifecycle step of the registry.
func (t *Registry) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Bootstrap registers the default drivers and moves the registry to the
// ready state. It can only run once.
func (t *Registry) Bootstrap(defaults []Entry) error {
	t.mu.Lock()
	if t.state != StateEmpty {
		t.mu.Unlock()
		return ErrBootstrapped
	}
	t.state = StateBootstrapping
	t.mu.Unlock()

	for _, e := range defaults {
		if err := t.RegisterDriver(e.Module, e.Mode); err != nil {
			return errors.Wrap(err, "bootstrap")
		}
	}

	t.mu.Lock()
	t.state = StateReady
	t.mu.Unlock()
	t.log.Debug().Int("drivers", len(defaults)).Msg("registry ready")
	return nil
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}

// RegisterDriver registers module under the name it provides.
// In ModeSingleton the instance is created now and shared by every
// lookup. In ModeFactory a new instance is created per lookup.
func (t *Registry) RegisterDriver(module any, mode Mode) error {
	namer, ok := module.(Namer)
	if !ok {
		return errors.Wrapf(ErrMissingName, "%T", module)
	}
	name := namer.Name()
	if !isValidName(name) {
		return errors.Wrapf(ErrInvalidName, "%T provides %q", module, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.reserved.Has(name) {
		return errors.Wrapf(ErrReservedName, "%q used by %T", name, module)
	}
	if _, ok := t.entries[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "%q", name)
	}
	instancer, ok := module.(Instancer)
	if !ok {
		return errors.Wrapf(ErrMissingInstancer, "%T", module)
	}

	switch mode {
	case ModeFactory:
		t.entries[name] = entry{
			mode:   ModeFactory,
			driver: instancer,
		}
	default:
		instance, err := instancer.Instantiate()
		if err != nil {
			return errors.Wrapf(err, "instantiate %q", name)
		}
		t.entries[name] = entry{
			mode:     ModeSingleton,
			instance: instance,
		}
		mode = ModeSingleton
	}
	t.log.Debug().Str("driver", name).Stringer("mode", mode).Msg("registered")
	return nil
}

// IsDriverRegistered returns true if a driver is registered as name.
func (t *Registry) IsDriverRegistered(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[name]
	return ok
}

// Mode returns the registration mode of the driver registered as name.
func (t *Registry) Mode(name string) (Mode, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[name]
	return e.mode, ok
}

// GetDriverInstance returns the instance of the driver registered as name.
// A factory driver builds a new instance from args, a singleton driver
// returns its shared instance and ignores args.
func (t *Registry) GetDriverInstance(name string, args ...any) (any, error) {
	t.mu.RLock()
	e, ok := t.entries[name]
	t.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "%q", name)
	}
	if e.mode == ModeFactory {
		instance, err := e.driver.Instantiate(args...)
		if err != nil {
			return nil, errors.Wrapf(err, "instantiate %q", name)
		}
		return instance, nil
	}
	return e.instance, nil
}

// Property returns the shared instance of the singleton driver registered
// as name. Factory drivers need constructor args, use Call instead.
func (t *Registry) Property(name string) (any, error) {
	if mode, ok := t.Mode(name); ok && mode == ModeFactory {
		return nil, errors.Wrapf(ErrFactoryProperty, "%q", name)
	}
	return t.GetDriverInstance(name)
}

// Call is GetDriverInstance, passing args to factory drivers.
func (t *Registry) Call(name string, args ...any) (any, error) {
	return t.GetDriverInstance(name, args...)
}

// List returns the sorted registered driver names.
func (t *Registry) List() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return xmap.SortedKeys(t.entries)
}

// NamesByMode returns the sorted registered driver names grouped by mode.
func (t *Registry) NamesByMode() map[Mode][]string {
	m := make(map[Mode][]string)
	for _, name := range t.List() {
		mode, _ := t.Mode(name)
		m[mode] = append(m[mode], name)
	}
	return m
}

// Resolve returns the instance of the driver registered as name, asserted
// to type T.
func Resolve[T any](r *Registry, name string, args ...any) (T, error) {
	var zero T
	i, err := r.GetDriverInstance(name, args...)
	if err != nil {
		return zero, err
	}
	v, ok := i.(T)
	if !ok {
		return zero, errors.Wrapf(ErrType, "%q is %T, not %T", name, i, zero)
	}
	return v, nil
}
