// Package config resolves csvq settings from flags, environment and an
// optional config file.
//
// Precedence, highest first: command-line flags, CSVQ_* environment
// variables, the config file, defaults.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/csvq/internal/query"
)

// EnvPrefix prefixes environment variables, e.g. CSVQ_FILE
const EnvPrefix = "CSVQ"

// Flag names shared with the command line
const (
	KeyFile      = "file"
	KeyFormat    = "format"
	KeyConfig    = "config"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Config holds the settings for one run
type Config struct {
	File      string `mapstructure:"file"`
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	// Commands maps operation name to its expression
	Commands query.CommandRequest `mapstructure:"-"`
}

// Load resolves configuration for the parsed flag set. operations lists
// the registry names whose expressions should be collected.
func Load(fs *pflag.FlagSet, operations []string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyFormat, "table")
	v.SetDefault(KeyLogLevel, "WARN")
	v.SetDefault(KeyLogFormat, "text")

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "unable to bind flags")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString(KeyConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
	} else {
		v.SetConfigName("csvq")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/csvq")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "unable to read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	cfg.Commands = make(query.CommandRequest, len(operations))
	for _, name := range operations {
		if expr := v.GetString(name); expr != "" {
			cfg.Commands[name] = expr
		}
	}

	return &cfg, nil
}
