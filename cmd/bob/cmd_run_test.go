package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/bob/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRun_eachPackage(t *testing.T) {
	root := testutil.CreateContractsWorkspace(t, "foo", "bar")
	t.Setenv("PACKAGE_PREFIX", "contracts/")

	_, stderr, err := execute(t, "--root", root, "run", "--", "sh", "-c", "echo {name} > ran.txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Ran in 2 package(s).")

	for _, name := range []string{"foo", "bar"} {
		data, err := os.ReadFile(filepath.Join(root, "contracts", name, "ran.txt")) //nolint:gosec // test file
		require.NoError(t, err)
		assert.Equal(t, name+"\n", string(data))
	}
	_, err = os.Stat(filepath.Join(root, "packages", "utils", "ran.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRun_failureStops(t *testing.T) {
	root := testutil.CreateContractsWorkspace(t, "a", "b")
	t.Setenv("PACKAGE_PREFIX", "contracts/")

	_, _, err := execute(t, "--root", root, "run", "--", "sh", "-c", "touch ran.txt; exit 1")
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(root, "contracts", "a", "ran.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "contracts", "b", "ran.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRun_noArgs(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)
}

func TestRunRun_onlyDashDash(t *testing.T) {
	_, _, err := execute(t, "run", "--")
	require.Error(t, err)
}
