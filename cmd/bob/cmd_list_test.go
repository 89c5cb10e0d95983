package main

import (
	"encoding/json"
	"testing"

	"github.com/fbkclanna/bob/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunList_table(t *testing.T) {
	root := testutil.CreateContractsWorkspace(t, "foo")
	t.Setenv("PACKAGE_PREFIX", "contracts/")

	out, _, err := execute(t, "--root", root, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Mode: workspace")
	assert.Contains(t, out, "contracts/foo")
	assert.Contains(t, out, "packages/utils")
	assert.Contains(t, out, "SELECTED")
}

func TestRunList_json(t *testing.T) {
	root := testutil.CreateContractsWorkspace(t, "foo")
	testutil.WriteFile(t, root, "contracts/empty/.keep", "")
	t.Setenv("PACKAGE_PREFIX", "contracts/")

	out, _, err := execute(t, "--root", root, "list", "--json")
	require.NoError(t, err)

	var l listing
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "workspace", l.Mode)
	assert.Equal(t, []string{"contracts/*", "packages/*"}, l.Members)
	require.Len(t, l.Packages, 3)

	assert.Equal(t, "contracts/empty", l.Packages[0].Dir)
	assert.NotEmpty(t, l.Packages[0].Error)
	assert.True(t, l.Packages[0].Selected)

	assert.Equal(t, packageStatus{Dir: "contracts/foo", Package: "foo", Version: "0.1.0", Selected: true}, l.Packages[1])
	assert.Equal(t, packageStatus{Dir: "packages/utils", Package: "utils", Version: "0.1.0"}, l.Packages[2])
}

func TestRunList_prefixFlag(t *testing.T) {
	root := testutil.CreateContractsWorkspace(t, "foo")

	out, _, err := execute(t, "--root", root, "list", "--json", "--prefix", "packages/")
	require.NoError(t, err)

	var l listing
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "packages/", l.Prefix)
	for _, p := range l.Packages {
		assert.Equal(t, p.Dir == "packages/utils", p.Selected, p.Dir)
	}
}

func TestRunList_singleProject(t *testing.T) {
	root := t.TempDir()
	testutil.CreatePackage(t, root, ".", "widget")

	out, _, err := execute(t, "--root", root, "list", "--json")
	require.NoError(t, err)

	var l listing
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, "single", l.Mode)
	require.Len(t, l.Packages, 1)
	assert.Equal(t, "widget", l.Packages[0].Package)
	assert.True(t, l.Packages[0].Selected)
}
