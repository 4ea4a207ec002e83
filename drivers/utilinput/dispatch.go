package utilinput

import (
	"github.com/pkg/errors"
)

var (
	// ErrUndefinedMethod is returned by Dispatch for a method not
	// matching a source.
	ErrUndefinedMethod = errors.New("undefined method")

	// ErrArgs is returned by Dispatch for arguments not matching
	// (name string, [filter Filter], [opts Options]).
	ErrArgs = errors.New("invalid arguments")
)

func (t *T) Get(name string, filter Filter, opts ...Options) any {
	return t.Filter(SourceGet, name, filter, firstOptions(opts))
}

func (t *T) Post(name string, filter Filter, opts ...Options) any {
	return t.Filter(SourcePost, name, filter, firstOptions(opts))
}

func (t *T) Cookie(name string, filter Filter, opts ...Options) any {
	return t.Filter(SourceCookie, name, filter, firstOptions(opts))
}

func (t *T) Server(name string, filter Filter, opts ...Options) any {
	return t.Filter(SourceServer, name, filter, firstOptions(opts))
}

func (t *T) Env(name string, filter Filter, opts ...Options) any {
	return t.Filter(SourceEnv, name, filter, firstOptions(opts))
}

func firstOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}

// Dispatch calls the accessor named method with args, the method name
// being a source name like "get" or "env". The arguments are the
// variable name, an optional Filter and optional Options.
func (t *T) Dispatch(method string, args ...any) (any, error) {
	source, ok := NewSource(method)
	if !ok {
		return nil, errors.Wrapf(ErrUndefinedMethod, "%s", method)
	}
	call := []any{source}
	for _, arg := range args {
		call = t.arrays.Inject(arg, 0, call)
	}
	return t.call(call)
}

func (t *T) call(args []any) (any, error) {
	if len(args) < 2 || len(args) > 4 {
		return nil, errors.Wrapf(ErrArgs, "expected 1 to 3 arguments, got %d", len(args)-1)
	}
	source := args[0].(Source)
	name, ok := args[1].(string)
	if !ok {
		return nil, errors.Wrapf(ErrArgs, "name must be a string, got %T", args[1])
	}
	filter := FilterDefault
	if len(args) > 2 {
		switch o := args[2].(type) {
		case Filter:
			filter = o
		case string:
			if filter, ok = NewFilter(o); !ok {
				return nil, errors.Wrapf(ErrArgs, "unknown filter %s", o)
			}
		default:
			return nil, errors.Wrapf(ErrArgs, "filter must be a Filter, got %T", o)
		}
	}
	var opts Options
	if len(args) > 3 {
		switch o := args[3].(type) {
		case Options:
			opts = o
		case Flag:
			opts.Flags = o
		default:
			return nil, errors.Wrapf(ErrArgs, "options must be Options or Flag, got %T", o)
		}
	}
	return t.Filter(source, name, filter, opts), nil
}
