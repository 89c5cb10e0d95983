package config

import (
	"github.com/fbkclanna/bob/internal/workspace"
	"github.com/knadh/koanf/v2"
)

// DefaultCommand builds a CosmWasm contract as an optimized wasm library.
var DefaultCommand = []string{
	"cargo", "build",
	"--release",
	"--lib",
	"--target", "wasm32-unknown-unknown",
	"--locked",
}

// DefaultRustFlags strips debug symbols from the wasm output.
const DefaultRustFlags = "-C link-arg=-s"

// defaults returns the built-in values as flat koanf keys.
// They are loaded first and overridden by bob.yaml and env vars.
func defaults() map[string]any {
	return map[string]any{
		"package_prefix": workspace.DefaultPrefix,

		"build.command":       append([]string(nil), DefaultCommand...),
		"build.env.RUSTFLAGS": DefaultRustFlags,

		"log.level":  "info",
		"log.format": "console",
	}
}

func loadDefaults(k *koanf.Koanf) error {
	for key, v := range defaults() {
		if err := k.Set(key, v); err != nil {
			return err
		}
	}
	return nil
}

// Default returns the built-in configuration. It matches what Load returns
// when no bob.yaml or environment overrides are present.
func Default() *Config {
	return &Config{
		PackagePrefix: workspace.DefaultPrefix,
		Build: BuildConfig{
			Command: append([]string(nil), DefaultCommand...),
			Env:     map[string]string{"RUSTFLAGS": DefaultRustFlags},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}
