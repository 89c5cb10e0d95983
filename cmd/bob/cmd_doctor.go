package main

import (
	"fmt"
	"os/exec"

	"github.com/fbkclanna/bob/internal/git"
	"github.com/fbkclanna/bob/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment and project for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	tool := s.cfg.Build.Command[0]
	_, _ = fmt.Fprintf(out, "Checking build tool (%s)... ", tool)
	if p, err := exec.LookPath(tool); err != nil {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "found at %s\n", p)
	}

	_, _ = fmt.Fprint(out, "Checking git... ")
	if !git.IsInstalled() {
		_, _ = fmt.Fprintln(out, "not found (build reports will not record commits)")
	} else if v, err := git.Version(); err != nil {
		_, _ = fmt.Fprintf(out, "ERROR\n  %v\n", err)
	} else {
		_, _ = fmt.Fprintln(out, v)
	}

	_, _ = fmt.Fprint(out, "Checking Cargo.toml... ")
	ctx, err := workspace.Load(s.root)
	if err != nil {
		_, _ = fmt.Fprintf(out, "ERROR\n  %v\n", err)
		ok = false
	} else {
		plan, err := workspace.Resolve(ctx, s.filter())
		if err != nil {
			_, _ = fmt.Fprintf(out, "ERROR\n  %v\n", err)
			ok = false
		} else {
			_, _ = fmt.Fprintf(out, "%s, %d package(s) selected with prefix %q\n", plan.Mode, len(plan.Selected), s.cfg.PackagePrefix)
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
