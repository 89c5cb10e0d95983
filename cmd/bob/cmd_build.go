package main

import (
	"fmt"
	"time"

	"github.com/fbkclanna/bob/internal/build"
	"github.com/fbkclanna/bob/internal/git"
	"github.com/fbkclanna/bob/internal/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the selected packages of the project",
		Long: `Build reads Cargo.toml in the project root. A single package is built
directly. For a workspace, member patterns are expanded to directories, sorted,
and filtered by the package prefix (PACKAGE_PREFIX, default "contracts/").
Packages are built one at a time; the first failure stops the run.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
	cmd.Flags().String("prefix", "", "Build only packages whose directory starts with this prefix (overrides PACKAGE_PREFIX)")
	cmd.Flags().String("report", "", "Write a YAML build report to this path")
	cmd.Flags().Bool("dry-run", false, "Show what would be built without running the build tool")
	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	reportPath, _ := cmd.Flags().GetString("report")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runner := &build.CommandRunner{
		Command: s.cfg.Build.Command,
		Env:     s.cfg.EnvList(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}

	rep, err := build.Build(cmd.Context(), build.Options{
		Root:   s.root,
		Filter: s.filter(),
		Runner: runner,
		Log:    s.log,
		Out:    cmd.ErrOrStderr(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportPath != "" && !dryRun {
		if err := writeReport(reportPath, rep, s.log); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}

	if dryRun {
		_, _ = fmt.Fprintf(out, "Dry run: %d package(s) would be built.\n", len(rep.Packages))
		return nil
	}
	_, _ = fmt.Fprintf(out, "Built %d package(s).\n", len(rep.Packages))
	return nil
}

func writeReport(path string, rep *build.Report, log zerolog.Logger) error {
	f := &report.File{
		Version:     1,
		GeneratedAt: time.Now().Format(time.RFC3339),
		ToolVersion: version,
		Root:        rep.Root,
		Mode:        rep.Mode,
		Prefix:      rep.Prefix,
		Packages:    make([]report.Package, 0, len(rep.Packages)),
	}

	if git.IsRepo(rep.Root) {
		// A repository without commits has no HEAD; the report is written without one.
		if commit, err := git.HeadCommit(rep.Root); err != nil {
			log.Debug().Err(err).Msg("No commit recorded in report")
		} else {
			f.Commit = commit
		}
		if dirty, err := git.IsDirty(rep.Root); err != nil {
			log.Debug().Err(err).Msg("No dirty flag recorded in report")
		} else {
			f.Dirty = dirty
		}
	}

	for _, r := range rep.Packages {
		f.Packages = append(f.Packages, report.Package{
			Name:     r.Package.Name,
			Version:  r.Package.Version,
			Dir:      r.Package.Dir,
			Duration: r.Duration.Round(time.Millisecond).String(),
		})
	}
	return report.Save(path, f)
}
