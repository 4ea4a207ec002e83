// Package driver is the package serving the driver registry.
// A driver is identified by a name and provides instances of a utility,
// either a single shared instance or a new one per lookup.
package driver

import (
	"sync"

	"github.com/pkg/errors"
)

type (
	// Namer is implemented by drivers to provide their registry name.
	// The name is stable, lowercase and contains no whitespace.
	Namer interface {
		Name() string
	}

	// Instancer is implemented by drivers to provide an instance of the
	// utility they front.
	Instancer interface {
		Instantiate(args ...any) (any, error)
	}

	// Driver is the capability a module must satisfy to get registered.
	// The registry checks it at registration time, so a module missing
	// a method is reported as a configuration error.
	Driver interface {
		Namer
		Instancer
	}

	// Entry is a module to register with the mode to register it with.
	Entry struct {
		Module any
		Mode   Mode
	}

	singleton struct {
		name     string
		ctor     func() any
		once     sync.Once
		instance any
	}

	factory struct {
		name string
		ctor func(args ...any) (any, error)
	}
)

var (
	// ErrMissingName is returned when a module does not implement Namer.
	ErrMissingName = errors.New("driver must define a Name() method")

	// ErrMissingInstancer is returned when a module does not implement Instancer.
	ErrMissingInstancer = errors.New("driver must define an Instantiate() method")

	// ErrInvalidName is returned when a driver name is empty or contains whitespace.
	ErrInvalidName = errors.New("invalid driver name")

	// ErrReservedName is returned when a driver name is reserved.
	ErrReservedName = errors.New("driver name is reserved")

	// ErrAlreadyRegistered is returned when a driver name is already registered.
	ErrAlreadyRegistered = errors.New("driver already registered")

	// ErrNotRegistered is returned by lookups of an unknown driver name.
	ErrNotRegistered = errors.New("driver not registered")

	// ErrFactoryProperty is returned by property-style access to a factory driver.
	ErrFactoryProperty = errors.New("factory driver can not be accessed as a property")

	// ErrBootstrapped is returned by a second Bootstrap call.
	ErrBootstrapped = errors.New("registry already bootstrapped")

	// ErrType is returned by Resolve when the instance is not of the requested type.
	ErrType = errors.New("driver instance type mismatch")
)

// NewSingleton returns a Driver building its instance on first use and
// returning that same instance on every later call, whatever the args.
func NewSingleton(name string, ctor func() any) Driver {
	return &singleton{
		name: name,
		ctor: ctor,
	}
}

func (t *singleton) Name() string {
	return t.name
}

func (t *singleton) Instantiate(_ ...any) (any, error) {
	t.once.Do(func() {
		t.instance = t.ctor()
	})
	return t.instance, nil
}

// NewFactory returns a Driver building a new instance from args on every
// call.
func NewFactory(name string, ctor func(args ...any) (any, error)) Driver {
	return &factory{
		name: name,
		ctor: ctor,
	}
}

func (t *factory) Name() string {
	return t.name
}

func (t *factory) Instantiate(args ...any) (any, error) {
	return t.ctor(args...)
}
