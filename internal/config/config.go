// Package config loads bob settings from defaults, an optional bob.yaml in the
// project root and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fbkclanna/bob/internal/logging"
)

// FileName is the optional configuration file looked up in the project root.
const FileName = "bob.yaml"

// Config holds all settings for a run.
type Config struct {
	PackagePrefix string      `koanf:"package_prefix" yaml:"package_prefix"`
	Build         BuildConfig `koanf:"build" yaml:"build"`
	Log           LogConfig   `koanf:"log" yaml:"log,omitempty"`
}

// BuildConfig describes the build tool invocation.
type BuildConfig struct {
	// Command is the program and arguments run in each package directory.
	// "{name}" and "{dir}" are replaced with the package name and directory.
	Command []string `koanf:"command" yaml:"command"`
	// Env holds extra environment variables for the build tool.
	Env map[string]string `koanf:"env" yaml:"env,omitempty"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level,omitempty"`
	Format string `koanf:"format" yaml:"format,omitempty"`
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Build.Command) == 0 || strings.TrimSpace(c.Build.Command[0]) == "" {
		errs = append(errs, errors.New("build.command must not be empty"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format must be %s or %s, got %q", logging.FormatConsole, logging.FormatJSON, c.Log.Format))
	}
	return errors.Join(errs...)
}

// EnvList returns Build.Env as KEY=VALUE pairs.
func (c *Config) EnvList() []string {
	out := make([]string, 0, len(c.Build.Env))
	for k, v := range c.Build.Env {
		out = append(out, k+"="+v)
	}
	return out
}
