package main

import (
	"fmt"

	"github.com/fbkclanna/bob/internal/build"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- <command...>",
		Short: "Run a command in every selected package directory",
		Long: `Run executes a command in each selected package directory, in build order,
stopping at the first failure. "{name}" and "{dir}" in the arguments are
replaced with the package name and its directory relative to the root.`,
		Example: `  bob run -- cargo test --lib
  bob run --prefix packages/ -- cargo clippy -p {name}`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}
	cmd.Flags().String("prefix", "", "Run only in packages whose directory starts with this prefix (overrides PACKAGE_PREFIX)")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runner := &build.CommandRunner{
		Command: args,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}

	rep, err := build.Build(cmd.Context(), build.Options{
		Root:   s.root,
		Filter: s.filter(),
		Runner: runner,
		Log:    s.log,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Ran in %d package(s).\n", len(rep.Packages))
	return nil
}
