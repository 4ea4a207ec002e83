package driver

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	counter struct {
		start int
	}

	nameOnly struct{}

	instanceOnly struct{}

	custom struct {
		name string
	}
)

func (t nameOnly) Name() string { return "nameonly" }

func (t instanceOnly) Instantiate(_ ...any) (any, error) { return t, nil }

func (t custom) Name() string { return t.name }

func (t custom) Instantiate(_ ...any) (any, error) { return &t, nil }

func newCounterFactory(name string) Driver {
	return NewFactory(name, func(args ...any) (any, error) {
		c := &counter{}
		if len(args) > 0 {
			n, ok := args[0].(int)
			if !ok {
				return nil, errors.New("start must be an int")
			}
			c.start = n
		}
		return c, nil
	})
}

func newCounterSingleton(name string) Driver {
	return NewSingleton(name, func() any { return &counter{} })
}

func newRegistry(t *testing.T) *Registry {
	r, err := NewRegistry()
	require.NoError(t, err)
	return r
}

func TestRegisterDriver(t *testing.T) {
	t.Run("reserved names are refused", func(t *testing.T) {
		r := newRegistry(t)
		for _, name := range []string{"bootstrap", "g3"} {
			err := r.RegisterDriver(newCounterSingleton(name), ModeSingleton)
			assert.ErrorIs(t, err, ErrReservedName)
			assert.False(t, r.IsDriverRegistered(name))
		}
	})

	t.Run("extra reserved names are refused", func(t *testing.T) {
		r, err := NewRegistry(WithReservedNames("core"))
		require.NoError(t, err)
		assert.ErrorIs(t, r.RegisterDriver(newCounterSingleton("core"), ModeSingleton), ErrReservedName)
	})

	t.Run("second registration of a name fails", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.RegisterDriver(newCounterSingleton("counter"), ModeSingleton))
		err := r.RegisterDriver(newCounterFactory("counter"), ModeFactory)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		mode, ok := r.Mode("counter")
		assert.True(t, ok)
		assert.Equal(t, ModeSingleton, mode)
	})

	t.Run("missing name provider", func(t *testing.T) {
		r := newRegistry(t)
		assert.ErrorIs(t, r.RegisterDriver(instanceOnly{}, ModeSingleton), ErrMissingName)
	})

	t.Run("missing instance provider", func(t *testing.T) {
		r := newRegistry(t)
		assert.ErrorIs(t, r.RegisterDriver(nameOnly{}, ModeSingleton), ErrMissingInstancer)
		assert.False(t, r.IsDriverRegistered("nameonly"))
	})

	t.Run("invalid names", func(t *testing.T) {
		r := newRegistry(t)
		assert.ErrorIs(t, r.RegisterDriver(custom{name: ""}, ModeSingleton), ErrInvalidName)
		assert.ErrorIs(t, r.RegisterDriver(custom{name: "my driver"}, ModeSingleton), ErrInvalidName)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.RegisterDriver(custom{name: "abc"}, ModeSingleton))
		require.NoError(t, r.RegisterDriver(custom{name: "ABC"}, ModeSingleton))
		assert.Equal(t, []string{"ABC", "abc"}, r.List())
	})
}

func TestGetDriverInstance(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		r := newRegistry(t)
		_, err := r.GetDriverInstance("nope")
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("singleton returns the same instance whatever the args", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.RegisterDriver(newCounterSingleton("counter"), ModeSingleton))
		a, err := r.GetDriverInstance("counter")
		require.NoError(t, err)
		b, err := r.GetDriverInstance("counter", 5)
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("factory returns a new instance per call", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.RegisterDriver(newCounterFactory("counter"), ModeFactory))
		a, err := r.GetDriverInstance("counter", 1)
		require.NoError(t, err)
		b, err := r.GetDriverInstance("counter", 2)
		require.NoError(t, err)
		assert.NotSame(t, a, b)
		assert.Equal(t, 1, a.(*counter).start)
		assert.Equal(t, 2, b.(*counter).start)
	})

	t.Run("factory constructor errors are returned", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.RegisterDriver(newCounterFactory("counter"), ModeFactory))
		_, err := r.GetDriverInstance("counter", "x")
		assert.Error(t, err)
	})
}

func TestProperty(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.RegisterDriver(newCounterSingleton("single"), ModeSingleton))
	require.NoError(t, r.RegisterDriver(newCounterFactory("many"), ModeFactory))

	i, err := r.Property("single")
	assert.NoError(t, err)
	assert.IsType(t, &counter{}, i)

	_, err = r.Property("many")
	assert.ErrorIs(t, err, ErrFactoryProperty)

	_, err = r.Property("unknown")
	assert.ErrorIs(t, err, ErrNotRegistered)

	i, err = r.Call("many", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, i.(*counter).start)
}

func TestBootstrap(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, StateEmpty, r.State())
	err := r.Bootstrap([]Entry{
		{Module: newCounterSingleton("single"), Mode: ModeSingleton},
		{Module: newCounterFactory("many"), Mode: ModeFactory},
	})
	require.NoError(t, err)
	assert.Equal(t, StateReady, r.State())
	assert.Equal(t, []string{"many", "single"}, r.List())
	assert.Equal(t, map[Mode][]string{
		ModeFactory:   {"many"},
		ModeSingleton: {"single"},
	}, r.NamesByMode())

	assert.ErrorIs(t, r.Bootstrap(nil), ErrBootstrapped)
	assert.Equal(t, StateReady, r.State())

	require.NoError(t, r.RegisterDriver(custom{name: "adhoc"}, ModeSingleton))
	assert.True(t, r.IsDriverRegistered("adhoc"))
}

func TestResolve(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.RegisterDriver(newCounterFactory("counter"), ModeFactory))

	c, err := Resolve[*counter](r, "counter", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, c.start)

	_, err = Resolve[string](r, "counter")
	assert.ErrorIs(t, err, ErrType)
}

func TestMode(t *testing.T) {
	assert.Equal(t, ModeFactory, NewMode("factory"))
	assert.Equal(t, ModeUnknown, NewMode("bogus"))
	assert.False(t, NewMode("bogus").IsValid())

	b, err := ModeSingleton.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"singleton"`, string(b))

	var m Mode
	require.NoError(t, m.UnmarshalJSON([]byte(`"factory"`)))
	assert.Equal(t, ModeFactory, m)
}
