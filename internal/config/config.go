// Package config provides configuration loading for strfold.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/viant/tagly/format/text"
)

const (
	envPrefix         = "STRFOLD_"
	maxConfigFileSize = 64 * 1024
)

// Config holds the folding defaults of the strfold command
type Config struct {
	Prefix     string `koanf:"prefix"`
	Closing    string `koanf:"closing"`
	Separator  string `koanf:"separator"`
	CaseFormat string `koanf:"case_format"`
	Log        Log    `koanf:"log"`
}

// Log holds logger settings
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultPath returns ~/.config/strfold/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "strfold", "config.yaml"), nil
}

// Load loads configuration from the YAML file at configPath, then overrides it with STRFOLD_* environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (STRFOLD_SEPARATOR, STRFOLD_LOG_LEVEL, ...)
//  2. YAML config file
//  3. Defaults
//
// An empty configPath loads the default path when that file exists.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	explicit := configPath != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	content, err := readConfigFile(configPath)
	switch {
	case err == nil:
		if len(content) == 0 {
			break
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, err
	}

	// STRFOLD_CASE_FORMAT -> case_format, STRFOLD_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(key, "log_"); ok {
			return "log." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(configPath string) ([]byte, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(content) > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", configPath, maxConfigFileSize)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate checks the configured case format and log format
func (c *Config) Validate() error {
	if c.CaseFormat != "" && !text.NewCaseFormat(c.CaseFormat).IsDefined() {
		return fmt.Errorf("unsupported case format: %q", c.CaseFormat)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %q", c.Log.Format)
	}
	return nil
}
