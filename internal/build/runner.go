package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fbkclanna/bob/internal/manifest"
)

// Runner invokes the build tool for one package. dir is absolute.
type Runner interface {
	Run(ctx context.Context, dir string, pkg *manifest.Package) error
}

// CommandRunner runs a fixed command line in the package directory.
// Output streams default to the process's own stdout and stderr.
type CommandRunner struct {
	Command []string
	// Env is appended to the inherited environment.
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command without shell expansion. "{name}" and "{dir}" in
// arguments are replaced with the package name and its root-relative directory.
func (r *CommandRunner) Run(ctx context.Context, dir string, pkg *manifest.Package) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("%w: empty command", ErrToolInvocationFailed)
	}

	repl := strings.NewReplacer("{name}", pkg.Name, "{dir}", pkg.Dir)
	args := make([]string, len(r.Command))
	for i, a := range r.Command {
		args[i] = repl.Replace(a)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // command comes from bob configuration
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.Stdout = orDefault(r.Stdout, os.Stdout)
	cmd.Stderr = orDefault(r.Stderr, os.Stderr)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrToolInvocationFailed, strings.Join(args, " "), err)
	}
	return nil
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
