// Package config loads protomodels settings from an optional protomodels.yml
// in the working directory, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults point at the model directory of a Tachiyomi checkout sitting next
// to the working directory.
const (
	DefaultSourceRoot = "tachiyomi/app/src/main/java/eu/kanade/tachiyomi/data/database/models"
	DefaultExtension  = ".kt"
)

// Config holds the scan settings
type Config struct {
	SourceRoot string
	Extension  string
}

// Load reads protomodels.yml if present and applies PROTOMODELS_* environment
// overrides. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("protomodels")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("source.root", DefaultSourceRoot)
	v.SetDefault("source.extension", DefaultExtension)

	// Dots in config keys become underscores in env names, so source.root
	// is overridable as PROTOMODELS_SOURCE_ROOT.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetEnvPrefix("PROTOMODELS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read protomodels.yml: %w", err)
		}
	}

	return &Config{
		SourceRoot: v.GetString("source.root"),
		Extension:  v.GetString("source.extension"),
	}, nil
}
