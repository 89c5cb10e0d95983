package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/bob/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRunner_success(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := &CommandRunner{
		Command: []string{"sh", "-c", "echo {name} {dir} $BOB_TEST_VAR; pwd"},
		Env:     []string{"BOB_TEST_VAR=set"},
		Stdout:  &out,
	}

	err := r.Run(context.Background(), dir, &manifest.Package{Name: "foo", Dir: "contracts/foo"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "foo contracts/foo set", lines[0])

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(lines[1])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommandRunner_nonZeroExit(t *testing.T) {
	r := &CommandRunner{Command: []string{"sh", "-c", "exit 3"}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), t.TempDir(), &manifest.Package{Name: "foo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolInvocationFailed))
}

func TestCommandRunner_notFound(t *testing.T) {
	r := &CommandRunner{Command: []string{"bob-no-such-tool-xyz"}}

	err := r.Run(context.Background(), t.TempDir(), &manifest.Package{Name: "foo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolInvocationFailed))
}

func TestCommandRunner_emptyCommand(t *testing.T) {
	err := (&CommandRunner{}).Run(context.Background(), t.TempDir(), &manifest.Package{Name: "foo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolInvocationFailed))
}

func TestCommandRunner_writesInPackageDir(t *testing.T) {
	dir := t.TempDir()
	r := &CommandRunner{Command: []string{"sh", "-c", "echo built > artifact.txt"}}

	require.NoError(t, r.Run(context.Background(), dir, &manifest.Package{Name: "foo"}))

	data, err := os.ReadFile(filepath.Join(dir, "artifact.txt")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "built\n", string(data))
}

func TestPackageError_message(t *testing.T) {
	err := &PackageError{Dir: "contracts/foo", Package: "foo", Err: ErrToolInvocationFailed}
	assert.Equal(t, "package foo (contracts/foo): build tool invocation failed", err.Error())

	err = &PackageError{Dir: "contracts/foo", Err: ErrManifestUnreadable}
	assert.Equal(t, "package contracts/foo: package manifest unreadable", err.Error())
}
