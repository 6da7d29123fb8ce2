// Package config loads depgen settings from defaults, an optional YAML file,
// DEPGEN_* environment variables and command-line flags.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/matzehuels/depgen/pkg/cargo"
	"github.com/matzehuels/depgen/pkg/errors"
)

const (
	// DefaultFile is looked up in the working directory when no --config is given.
	DefaultFile = "depgen.yaml"

	// EnvPrefix prefixes environment overrides, e.g. DEPGEN_CARGO.
	EnvPrefix = "DEPGEN_"

	DefaultCargo = "cargo"
)

// Config holds the settings of one depgen invocation.
type Config struct {
	Cargo        string `koanf:"cargo" validate:"required"`
	ManifestPath string `koanf:"manifest_path"`
	Registry     string `koanf:"registry" validate:"required"`
	Verbose      bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Load builds a Config. cfgFile names an explicit config file, which must
// exist; when empty, DefaultFile is used if present. Only flags that were
// explicitly set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"cargo":         DefaultCargo,
		"manifest_path": "",
		"registry":      cargo.CratesIORegistry,
		"verbose":       false,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading defaults")
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config file %s", cfgFile)
		}
	}

	// DEPGEN_MANIFEST_PATH -> manifest_path
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading environment")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding config")
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	return nil
}

// Command returns the metadata provider described by c.
func (c *Config) Command() *cargo.Command {
	return &cargo.Command{Bin: c.Cargo, ManifestPath: c.ManifestPath}
}
