package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// PrefixEnv selects which workspace packages are built.
	PrefixEnv = "PACKAGE_PREFIX"
	envPrefix = "BOB_"
)

// Load reads configuration with the following precedence (highest last):
//
//  1. Built-in defaults
//  2. Config file (path, or bob.yaml under root when path is empty; optional)
//  3. PACKAGE_PREFIX
//  4. BOB_* environment variables
//
// Environment variable mapping:
//
//	BOB_LOG_LEVEL      -> log.level
//	BOB_LOG_FORMAT     -> log.format
//	BOB_BUILD_COMMAND  -> build.command (split on whitespace)
//	BOB_PACKAGE_PREFIX -> package_prefix
func Load(root, path string) (*Config, error) {
	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	// An explicitly empty PACKAGE_PREFIX is kept and selects every package.
	if v, ok := os.LookupEnv(PrefixEnv); ok {
		if err := k.Set("package_prefix", v); err != nil {
			return nil, fmt.Errorf("loading %s: %w", PrefixEnv, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			switch key {
			case "log_level":
				return "log.level", value
			case "log_format":
				return "log.format", value
			case "build_command":
				return "build.command", strings.Fields(value)
			case "package_prefix":
				return "package_prefix", value
			default:
				return "", nil
			}
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
