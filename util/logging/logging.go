// Package logging configures the global zerolog logger with a console
// writer and an optional rolling log file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration of the zerolog logger and writers
type Config struct {
	// Level is the minimum level logged: debug, info, warn, error...
	Level string

	// Enable console logging
	WithConsoleLog bool

	// Enable console logging coloring
	WithColor bool

	// WithCaller adds the file:line information of the logger caller
	WithCaller bool

	// Directory to log to when file logging is enabled. Empty disables
	// file logging.
	Directory string

	// Filename is the name of the logfile which will be placed inside the directory
	Filename string

	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int

	// MaxBackups the max number of rolled files to keep
	MaxBackups int

	// MaxAge the max age in days to keep a logfile
	MaxAge int
}

const (
	TimeFormat = "15:04:05.000"

	defaultFilename   = "g3.log"
	defaultMaxSize    = 5
	defaultMaxBackups = 1
	defaultMaxAge     = 30
)

var (
	consoleWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: TimeFormat}
)

// SetDefaultConsoleWriter set the default console writer
func SetDefaultConsoleWriter(w zerolog.ConsoleWriter) {
	consoleWriter = w
}

// Configure sets up the global logger and level
func Configure(config Config) error {
	level := zerolog.InfoLevel
	if config.Level != "" {
		l, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return errors.Wrapf(err, "log level %q", config.Level)
		}
		level = l
	}
	zerolog.SetGlobalLevel(level)

	writers := make([]io.Writer, 0, 2)
	if config.WithConsoleLog {
		w := consoleWriter
		w.NoColor = !config.WithColor
		writers = append(writers, w)
	}
	if config.Directory != "" {
		fileWriter, err := newRollingFile(config)
		if err != nil {
			return err
		}
		writers = append(writers, fileWriter)
	}
	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}
	ctx := zerolog.New(w).With().Timestamp()
	if config.WithCaller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	return nil
}

func newRollingFile(config Config) (io.Writer, error) {
	if err := os.MkdirAll(config.Directory, 0744); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", config.Directory)
	}
	filename := config.Filename
	if filename == "" {
		filename = defaultFilename
	}
	l := &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, filename),
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}
	if l.MaxSize == 0 {
		l.MaxSize = defaultMaxSize
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = defaultMaxBackups
	}
	if l.MaxAge == 0 {
		l.MaxAge = defaultMaxAge
	}
	return l, nil
}
