// Package g3cmd is the g3 command line front-end to the utility drivers.
package g3cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goodglamm/g3util/config"
	"github.com/goodglamm/g3util/core/g3"
	"github.com/goodglamm/g3util/util/logging"
)

type (
	// OptsGlobal are the persistent flags of the root command.
	OptsGlobal struct {
		Config string
		Color  string
		Format string
		Caller bool
		Debug  bool
		Quiet  bool
	}
)

var (
	// cfg is the configuration loaded before every command run.
	cfg = &config.T{}
)

// NewRoot returns the g3 command tree.
func NewRoot() *cobra.Command {
	var options OptsGlobal
	root := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         "the g3 utilities command",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       g3.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return options.persistentPreRunE(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&options.Config, "config", "", "config file (default \"$HOME/.g3util.yaml\")")
	flags.StringVar(&options.Color, "color", "auto", "output colorization (yes|no|auto)")
	flags.StringVar(&options.Format, "format", "text", "output format (text|json)")
	flags.BoolVarP(&options.Quiet, "quiet", "q", false, "do not display logs on the console")
	flags.BoolVar(&options.Debug, "debug", false, "display logs at debug level")
	flags.BoolVar(&options.Caller, "caller", false, "show the caller file and linenum in logs")

	root.AddCommand(
		newCmdDrivers(),
		newCmdVersion(),
		newCmdLocate(),
		newCmdArrays(),
		newCmdStrings(),
		newCmdTime(),
		newCmdFiles(),
		newCmdInput(),
	)
	return root
}

func setColor(s string) {
	switch s {
	case "yes":
		color.NoColor = false
	case "no":
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = os.Getenv("TERM") == "dumb" || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	}
}

func (t *OptsGlobal) persistentPreRunE(cmd *cobra.Command) error {
	c, err := config.Load(t.Config)
	if err != nil {
		return err
	}
	cfg = c
	if !cmd.Flags().Changed("color") && c.Log.Color != "" {
		t.Color = c.Log.Color
	}
	setColor(t.Color)
	level := c.Log.Level
	if t.Debug {
		level = "debug"
	}
	err = logging.Configure(logging.Config{
		Level:          level,
		WithConsoleLog: !t.Quiet || t.Debug,
		WithColor:      t.Color != "no",
		WithCaller:     t.Caller,
		Directory:      c.Log.Dir,
		Filename:       c.Log.File,
	})
	if err != nil {
		return err
	}
	log.Logger = log.Logger.With().Str("version", g3.Version).Logger()
	log.Debug().Msgf("command: %s", shellquote.Join(os.Args...))
	formatFlag = t.Format
	if f := config.File(); f != "" {
		log.Debug().Msgf("using config file %s", f)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ExecuteArgs(os.Args[1:])
}

// ExecuteArgs parses args and executes the cobra command, exiting with
// a non-zero code on error.
func ExecuteArgs(args []string) {
	if err := run(args, os.Stdout, os.Stderr); err != nil {
		type exitcoder interface {
			ExitCode() int
		}
		var xerr exitcoder
		if errors.As(err, &xerr) {
			os.Exit(xerr.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := NewRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}
