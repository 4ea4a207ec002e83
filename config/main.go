// Package config loads the g3 configuration from defaults, the
// $HOME/.g3util.yaml file and the G3_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// Program is the name of the project
	Program = "g3util"

	// EnvPrefix prefixes the environment variables overriding the
	// configuration keys. The "log.level" key is overridden by
	// G3_LOG_LEVEL.
	EnvPrefix = "G3"
)

type (
	// T is the top level configuration structure
	T struct {
		Log     LogSection     `mapstructure:"log"`
		Strings StringsSection `mapstructure:"strings"`
		Locator LocatorSection `mapstructure:"locator"`
	}

	LogSection struct {
		Level string `mapstructure:"level"`

		// Dir is the directory of the rolling log file. Empty disables
		// file logging.
		Dir   string `mapstructure:"dir"`
		File  string `mapstructure:"file"`
		Color string `mapstructure:"color"`
	}

	StringsSection struct {
		WordsPerMinute int `mapstructure:"words_per_minute"`
	}

	LocatorSection struct {
		Namespaces []Namespace `mapstructure:"namespaces"`
	}

	// Namespace is a locator registration. It is a list item, not a map
	// key, because viper lowercases keys and prefixes are case sensitive.
	Namespace struct {
		Prefix string `mapstructure:"prefix"`
		Dir    string `mapstructure:"dir"`
	}
)

var (
	// Viper is the viper instance of the last Load
	Viper *viper.Viper
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.file", "g3.log")
	v.SetDefault("log.color", "auto")
	v.SetDefault("strings.words_per_minute", 200)
	v.SetDefault("locator.namespaces", []Namespace{})
}

// Load returns the configuration. A non-empty configFile is read instead
// of $HOME/.g3util.yaml and must exist.
func Load(configFile string) (*T, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	if configFile != "" {
		p, err := homedir.Expand(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "expand %s", configFile)
		}
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", p)
		}
	} else if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + Program)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	t := &T{}
	if err := v.Unmarshal(t); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if t.Log.Dir != "" {
		if p, err := homedir.Expand(t.Log.Dir); err == nil {
			t.Log.Dir = p
		}
	}
	Viper = v
	return t, nil
}

// File returns the configuration file used by the last Load, or "".
func File() string {
	if Viper == nil {
		return ""
	}
	return Viper.ConfigFileUsed()
}
