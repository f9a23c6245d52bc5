// Package config loads koagen settings from defaults, an optional YAML file,
// KOAGEN_* environment variables and command-line flags, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = "koagen.yaml"

// EnvPrefix marks environment variables read into the config.
const EnvPrefix = "KOAGEN_"

// Config represents the koagen configuration.
type Config struct {
	OutDir         string   `koanf:"out_dir"`         // output root for models/, controllers/, services/
	Ext            string   `koanf:"ext"`             // extension of generated files
	ReservedFields []string `koanf:"reserved_fields"` // columns left out of the service guards
	LogLevel       string   `koanf:"log_level"`       // debug, info, warn, error
	Editor         string   `koanf:"editor"`          // editor command for --editor
}

// Defaults returns the built-in configuration.
func Defaults() map[string]any {
	return map[string]any{
		"out_dir":         ".",
		"ext":             ".js",
		"reserved_fields": []string{"id", "delete_time", "update_time"},
		"log_level":       "warn",
		"editor":          "",
	}
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"out":        "out_dir",
	"ext":        "ext",
	"reserved":   "reserved_fields",
	"log-level":  "log_level",
	"editor-cmd": "editor",
}

// Load builds the configuration. explicitPath, when set, must exist;
// otherwise DefaultFileName is used if present. flags may be nil.
func Load(explicitPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := explicitPath
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envValue turns KOAGEN_OUT_DIR into out_dir. Reserved fields are given as
// a comma-separated list.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "reserved_fields" {
		return key, splitList(value)
	}
	return key, value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

// Validate checks the configuration for values generation cannot use.
func (c *Config) Validate() error {
	if c.Ext == "" || !strings.HasPrefix(c.Ext, ".") {
		return fmt.Errorf("invalid ext %q: must start with '.'", c.Ext)
	}
	if strings.ContainsAny(c.Ext, `/\`) {
		return fmt.Errorf("invalid ext %q: must not contain a path separator", c.Ext)
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}
