// Package g3 is the process-wide entry point to the utility drivers.
//
// The global registry is built and bootstrapped with the built-in drivers
// on first use:
//
//	n := g3.Strings().WordCount(text)
//	v, err := g3.Get("time")
package g3

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/core/driverdb"
	"github.com/goodglamm/g3util/drivers/utilarrays"
	"github.com/goodglamm/g3util/drivers/utilfiles"
	"github.com/goodglamm/g3util/drivers/utilinput"
	"github.com/goodglamm/g3util/drivers/utilstrings"
	"github.com/goodglamm/g3util/drivers/utiltime"
)

var (
	registry    *driver.Registry
	registryErr error
	once        sync.Once
)

// Registry returns the global registry, bootstrapped with the built-in
// drivers. The bootstrap runs once, its error is returned by every call.
func Registry() (*driver.Registry, error) {
	once.Do(func() {
		r, err := driver.NewRegistry()
		if err != nil {
			registryErr = errors.Wrap(err, "new registry")
			return
		}
		if err := r.Bootstrap(driverdb.Defaults()); err != nil {
			registryErr = err
			return
		}
		registry = r
	})
	return registry, registryErr
}

// Get returns an instance of the driver registered as name.
func Get(name string, args ...any) (any, error) {
	r, err := Registry()
	if err != nil {
		return nil, err
	}
	return r.GetDriverInstance(name, args...)
}

// Property returns the shared instance of the singleton driver name.
func Property(name string) (any, error) {
	r, err := Registry()
	if err != nil {
		return nil, err
	}
	return r.Property(name)
}

func Call(name string, args ...any) (any, error) {
	r, err := Registry()
	if err != nil {
		return nil, err
	}
	return r.Call(name, args...)
}

// Register adds a driver to the global registry.
func Register(module any, mode driver.Mode) error {
	r, err := Registry()
	if err != nil {
		return err
	}
	return r.RegisterDriver(module, mode)
}

// IsRegistered returns true if a driver is registered as name in the
// global registry.
func IsRegistered(name string) bool {
	r, err := Registry()
	if err != nil {
		return false
	}
	return r.IsDriverRegistered(name)
}

// mustResolve panics if a built-in driver is missing, which only a failed
// bootstrap can cause.
func mustResolve[T any](name string) T {
	r, err := Registry()
	if err != nil {
		panic(err)
	}
	v, err := driver.Resolve[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

func Arrays() *utilarrays.T {
	return mustResolve[*utilarrays.T](utilarrays.DriverName)
}

func Files() *utilfiles.T {
	return mustResolve[*utilfiles.T](utilfiles.DriverName)
}

func Input() *utilinput.T {
	return mustResolve[*utilinput.T](utilinput.DriverName)
}

func Strings() *utilstrings.T {
	return mustResolve[*utilstrings.T](utilstrings.DriverName)
}

func Time() *utiltime.T {
	return mustResolve[*utiltime.T](utiltime.DriverName)
}
