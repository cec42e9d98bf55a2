package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/clems4ever/j48-json/j48"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultConfigFile is looked up in the working directory when --config
	// is not given.
	DefaultConfigFile = "j48json.yaml"
	// EnvPrefix prefixes environment overrides, e.g. J48JSON_LOG_LEVEL.
	EnvPrefix = "J48JSON_"
)

// Input formats accepted by --input-format.
const (
	InputAuto = "auto"
	InputText = "text"
	InputHTML = "html"
)

// Config holds the settings shared by every command.
type Config struct {
	InputFormat string `koanf:"input_format"`
	Infinity    string `koanf:"infinity"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `koanf:"-"`
}

// InfinityEncoding returns the parsed infinity setting.
func (c *Config) InfinityEncoding() (j48.InfinityEncoding, error) {
	return j48.ParseInfinityEncoding(c.Infinity)
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.InputFormat {
	case InputAuto, InputText, InputHTML:
	default:
		return fmt.Errorf("invalid input format %q (want auto, text or html)", c.InputFormat)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	if _, err := c.InfinityEncoding(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func defaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"input_format": InputAuto,
		"infinity":     "string",
		"log_level":    "warn",
		"log_format":   "text",
	}
}

// LoadConfig merges defaults, the config file, J48JSON_* environment
// variables and explicitly set flags, in increasing order of precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultConfig(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
