package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "contracts/", cfg.PackagePrefix)
	assert.Equal(t, DefaultCommand, cfg.Build.Command)
	assert.Equal(t, "-C link-arg=-s", cfg.Build.Env["RUSTFLAGS"])
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_packagePrefixEnv(t *testing.T) {
	t.Setenv(PrefixEnv, "packages/")

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "packages/", cfg.PackagePrefix)
}

func TestLoad_emptyPackagePrefixEnv(t *testing.T) {
	t.Setenv(PrefixEnv, "")

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.PackagePrefix)
}

func TestLoad_file(t *testing.T) {
	root := t.TempDir()
	data := []byte(`
package_prefix: apps/
build:
  command: ["make", "wasm"]
  env:
    CARGO_TERM_COLOR: always
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), data, 0644)) //nolint:gosec // test file

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, "apps/", cfg.PackagePrefix)
	assert.Equal(t, []string{"make", "wasm"}, cfg.Build.Command)
	assert.Equal(t, "always", cfg.Build.Env["CARGO_TERM_COLOR"])
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")
}

func TestLoad_envOverridesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("package_prefix: apps/\n"), 0644)) //nolint:gosec // test file
	t.Setenv(PrefixEnv, "contracts/")
	t.Setenv("BOB_BUILD_COMMAND", "cargo check --lib")
	t.Setenv("BOB_LOG_FORMAT", "json")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, "contracts/", cfg.PackagePrefix)
	assert.Equal(t, []string{"cargo", "check", "--lib"}, cfg.Build.Command)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_explicitPathMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_invalidLevel(t *testing.T) {
	t.Setenv("BOB_LOG_LEVEL", "loud")

	_, err := Load(t.TempDir(), "")
	require.Error(t, err)
}

func TestDefault_matchesLoad(t *testing.T) {
	t.Setenv("PACKAGE_PREFIX", "contracts/")

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_independentCopies(t *testing.T) {
	a := Default()
	a.Build.Command[0] = "cross"
	a.Build.Env["RUSTFLAGS"] = ""

	b := Default()
	assert.Equal(t, "cargo", b.Build.Command[0])
	assert.Equal(t, DefaultRustFlags, b.Build.Env["RUSTFLAGS"])
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Build.Command = nil
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Format = "xml"
	require.Error(t, cfg.Validate())
}

func TestEnvList(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"RUSTFLAGS=-C link-arg=-s"}, cfg.EnvList())
}
