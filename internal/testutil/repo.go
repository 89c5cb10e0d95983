package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return p
}

// CreatePackage creates root/rel with a Cargo.toml declaring the given package name.
func CreatePackage(t *testing.T, root, rel, name string) string {
	t.Helper()
	content := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n", name)
	p := WriteFile(t, root, filepath.Join(rel, "Cargo.toml"), content)
	return filepath.Dir(p)
}

// CreateWorkspace writes a root Cargo.toml with the given member patterns.
func CreateWorkspace(t *testing.T, root string, members ...string) {
	t.Helper()
	quoted := make([]string, len(members))
	for i, m := range members {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	content := fmt.Sprintf("[workspace]\nmembers = [%s]\n", strings.Join(quoted, ", "))
	WriteFile(t, root, "Cargo.toml", content)
}

// CreateContractsWorkspace creates a temp workspace with members ["contracts/*", "packages/*"],
// one package per name under contracts/ and a helper package under packages/.
func CreateContractsWorkspace(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	CreateWorkspace(t, root, "contracts/*", "packages/*")
	for _, n := range names {
		CreatePackage(t, root, filepath.Join("contracts", n), n)
	}
	CreatePackage(t, root, filepath.Join("packages", "utils"), "utils")
	return root
}

// InitRepo turns dir into a git repository with everything committed.
// The test is skipped when git is unavailable.
func InitRepo(t *testing.T, dir string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	InitEmptyRepo(t, dir)
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "initial commit")
}

// InitEmptyRepo runs git init in dir without committing, so HEAD does not exist yet.
func InitEmptyRepo(t *testing.T, dir string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	run(t, dir, "git", "init", "-b", "main")
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
