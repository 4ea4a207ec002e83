package g3cmd

import (
	"net/url"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/goodglamm/g3util/drivers/utilinput"
	"github.com/goodglamm/g3util/util/converters"
)

type (
	CmdInput struct {
		Method        string
		Query         string
		Filter        string
		Default       string
		Regexp        string
		MinRange      string
		MaxRange      string
		NullOnFailure bool
		RequireArray  bool
		ForceArray    bool
		AllowHex      bool
	}
)

func newCmdInput() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "input",
		Short: "filtered access to input variables",
	}
	cmd.AddCommand(
		newCmdInputMethod("get", "filter a query variable, read from --query"),
		newCmdInputMethod("server", "filter a server variable"),
		newCmdInputMethod("env", "filter an environment variable"),
	)
	return cmd
}

func newCmdInputMethod(method, short string) *cobra.Command {
	options := CmdInput{Method: method}
	cmd := &cobra.Command{
		Use:   method + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.Run(cmd, args[0])
		},
	}
	addFlagsInput(cmd.Flags(), &options)
	return cmd
}

func addFlagsInput(flags *pflag.FlagSet, options *CmdInput) {
	if options.Method == "get" {
		flags.StringVar(&options.Query, "query", "", "the query string, like a=1&b[]=2&b[]=3")
	}
	flags.StringVar(&options.Filter, "filter", "default", "default|int|float|bool|email|url|regexp|string|number_int|special_chars")
	flags.StringVar(&options.Default, "default", "", "value returned when the filter fails")
	flags.StringVar(&options.Regexp, "regexp", "", "the regular expression of the regexp filter")
	flags.StringVar(&options.MinRange, "min", "", "minimum of the int and float filters")
	flags.StringVar(&options.MaxRange, "max", "", "maximum of the int and float filters")
	flags.BoolVar(&options.NullOnFailure, "null-on-failure", false, "return null on failure and false when unset")
	flags.BoolVar(&options.RequireArray, "require-array", false, "fail unless the variable is an array")
	flags.BoolVar(&options.ForceArray, "force-array", false, "wrap a scalar value in an array")
	flags.BoolVar(&options.AllowHex, "allow-hex", false, "accept 0x prefixed hexadecimal with the int filter")
}

func (t *CmdInput) options() (utilinput.Options, error) {
	var opts utilinput.Options
	if t.NullOnFailure {
		opts.Flags |= utilinput.FlagNullOnFailure
	}
	if t.RequireArray {
		opts.Flags |= utilinput.FlagRequireArray
	}
	if t.ForceArray {
		opts.Flags |= utilinput.FlagForceArray
	}
	if t.AllowHex {
		opts.Flags |= utilinput.FlagAllowHex
	}
	if t.Default != "" {
		opts.Default = converters.ToAny(t.Default)
	}
	if t.Regexp != "" {
		re, err := regexp.Compile(t.Regexp)
		if err != nil {
			return opts, errors.Wrap(err, "regexp")
		}
		opts.Regexp = re
	}
	if t.MinRange != "" {
		f, err := converters.Num.ToFloat(t.MinRange)
		if err != nil {
			return opts, errors.Wrap(err, "min")
		}
		opts.MinRange = utilinput.Range(f)
	}
	if t.MaxRange != "" {
		f, err := converters.Num.ToFloat(t.MaxRange)
		if err != nil {
			return opts, errors.Wrap(err, "max")
		}
		opts.MaxRange = utilinput.Range(f)
	}
	return opts, nil
}

func (t *CmdInput) Run(cmd *cobra.Command, name string) error {
	filter, ok := utilinput.NewFilter(t.Filter)
	if !ok {
		return errors.Errorf("unknown filter %q", t.Filter)
	}
	opts, err := t.options()
	if err != nil {
		return err
	}
	in := utilinput.New()
	if t.Query != "" {
		values, err := url.ParseQuery(t.Query)
		if err != nil {
			return errors.Wrap(err, "query")
		}
		in.SetTable(utilinput.SourceGet, utilinput.TableFromValues(values))
	}
	v, err := in.Dispatch(t.Method, name, filter, opts)
	if err != nil {
		return err
	}
	return render(cmd, v)
}
