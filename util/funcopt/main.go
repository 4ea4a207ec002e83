// Package funcopt implements the functional options pattern shared by
// the registry and locator constructors.
package funcopt

type (
	// O is the interface a functional option satisfies.
	O interface {
		apply(t interface{}) error
	}

	// F is a func implementing O.
	F func(i interface{}) error
)

func (f F) apply(i interface{}) error {
	return f(i)
}

// Apply applies the options to t, stopping at the first error.
func Apply(t interface{}, opts ...O) error {
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o.apply(t); err != nil {
			return err
		}
	}
	return nil
}
