package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds tool-level settings. Everything can also be set per-run via
// flags; flags win over the config file, which wins over environment
// variables' defaults.
type Config struct {
	OutDir      string `mapstructure:"out_dir"`
	Concurrency int    `mapstructure:"concurrency"`
	Verbose     bool   `mapstructure:"verbose"`
}

// loadConfig reads .sumtypegen.yaml from the working directory or the
// user's config directory, plus SUMTYPEGEN_* environment variables. A
// missing config file is not an error.
func loadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName(".sumtypegen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "sumtypegen"))
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "sumtypegen"))
	}

	v.SetDefault("out_dir", ".")
	v.SetDefault("concurrency", 4)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("SUMTYPEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(v.AllSettings()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
