package g3

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodglamm/g3util/core/driver"
)

type greeting struct {
	to string
}

func TestRegistryOnce(t *testing.T) {
	var (
		wg sync.WaitGroup
		l  = make([]*driver.Registry, 8)
	)
	for i := range l {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := Registry()
			assert.NoError(t, err)
			l[i] = r
		}(i)
	}
	wg.Wait()
	for _, r := range l {
		assert.Same(t, l[0], r)
	}
	assert.Equal(t, driver.StateReady, l[0].State())
}

func TestBuiltins(t *testing.T) {
	for _, name := range []string{"arrays", "files", "input", "strings", "time"} {
		assert.True(t, IsRegistered(name), name)
	}
	assert.False(t, IsRegistered("g3"))

	assert.Same(t, Strings(), Strings())
	assert.Equal(t, 3, Strings().WordCount("one two three"))
	assert.Equal(t, []any{1, 2}, Arrays().Inject(2, 0, []any{1}))
	assert.False(t, Files().DoesExist(""))
	assert.NotNil(t, Input())
	s, err := Time().HumanReadableDiff(0, 60)
	require.NoError(t, err)
	assert.Equal(t, "1 minute", s)

	v, err := Property("strings")
	require.NoError(t, err)
	assert.Same(t, Strings(), v)
	v, err = Get("strings", "ignored")
	require.NoError(t, err)
	assert.Same(t, Strings(), v)

	_, err = Get("nope")
	assert.True(t, errors.Is(err, driver.ErrNotRegistered))
}

func TestRegisterFactory(t *testing.T) {
	d := driver.NewFactory("greeting", func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 arg, got %d", len(args))
		}
		return &greeting{to: fmt.Sprint(args[0])}, nil
	})
	require.NoError(t, Register(d, driver.ModeFactory))
	assert.True(t, errors.Is(Register(d, driver.ModeFactory), driver.ErrAlreadyRegistered))

	a, err := Call("greeting", "jane")
	require.NoError(t, err)
	b, err := Call("greeting", "jane")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
	assert.Equal(t, "jane", a.(*greeting).to)

	_, err = Property("greeting")
	assert.True(t, errors.Is(err, driver.ErrFactoryProperty))
	_, err = Call("greeting")
	assert.Error(t, err)
}

func TestRegisterReserved(t *testing.T) {
	d := driver.NewSingleton("bootstrap", func() any { return &greeting{} })
	assert.True(t, errors.Is(Register(d, driver.ModeSingleton), driver.ErrReservedName))
}
