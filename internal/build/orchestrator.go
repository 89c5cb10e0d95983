package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fbkclanna/bob/internal/manifest"
	"github.com/fbkclanna/bob/internal/ui"
	"github.com/fbkclanna/bob/internal/workspace"
	"github.com/rs/zerolog"
)

// Result records one successfully built package.
type Result struct {
	Package  manifest.Package
	Duration time.Duration
}

// Report summarizes a run. Packages lists successful builds in order.
type Report struct {
	Root     string
	Mode     string
	Prefix   string
	Plan     *workspace.Plan
	Packages []Result
	DryRun   bool
}

// Orchestrator builds package directories in order, stopping at the first failure.
type Orchestrator struct {
	root   string
	runner Runner
	log    zerolog.Logger
	out    io.Writer
	dryRun bool
	now    func() time.Time
}

// NewOrchestrator creates an orchestrator for packages under root.
// Progress lines are written to out.
func NewOrchestrator(root string, runner Runner, log zerolog.Logger, out io.Writer) *Orchestrator {
	return &Orchestrator{
		root:   root,
		runner: runner,
		log:    log,
		out:    out,
		now:    time.Now,
	}
}

// SetDryRun makes the orchestrator read and parse manifests without running the tool.
func (o *Orchestrator) SetDryRun(dryRun bool) {
	o.dryRun = dryRun
}

// Run builds each root-relative directory in order.
// The returned report holds the packages built before any failure.
func (o *Orchestrator) Run(ctx context.Context, dirs []string) (*Report, error) {
	rep := &Report{DryRun: o.dryRun}
	progress := ui.NewProgress(o.out, len(dirs))
	if len(dirs) == 0 {
		progress.Log("Nothing to build.")
	}

	for _, dir := range dirs {
		res, err := o.buildPackage(ctx, dir, progress)
		if err != nil {
			return rep, err
		}
		rep.Packages = append(rep.Packages, res)
	}
	return rep, nil
}

// BuildPackage runs the read, parse and build steps for a single directory.
func (o *Orchestrator) BuildPackage(ctx context.Context, dir string) (Result, error) {
	return o.buildPackage(ctx, dir, ui.NewProgress(o.out, 1))
}

func (o *Orchestrator) buildPackage(ctx context.Context, dir string, progress *ui.Progress) (Result, error) {
	abs := workspace.Abs(o.root, dir)

	data, err := os.ReadFile(filepath.Join(abs, manifest.FileName)) //nolint:gosec // path is a selected package directory
	if err != nil {
		return Result{}, &PackageError{Dir: dir, Err: fmt.Errorf("%w: %w", ErrManifestUnreadable, err)}
	}

	pkg, err := manifest.ParsePackage(data)
	if err != nil {
		return Result{}, &PackageError{Dir: dir, Err: err}
	}
	pkg.Dir = dir

	if o.dryRun {
		progress.Start("Would build %s (%s)", pkg.Name, dir)
		return Result{Package: *pkg}, nil
	}

	progress.Start("Building %s ...", pkg.Name)
	o.log.Debug().Str("package", pkg.Name).Str("dir", abs).Msg("Invoking build tool")

	start := o.now()
	if err := o.runner.Run(ctx, abs, pkg); err != nil {
		progress.Fail(pkg.Name)
		return Result{}, &PackageError{Dir: dir, Package: pkg.Name, Err: err}
	}
	elapsed := o.now().Sub(start)

	progress.Done(fmt.Sprintf("%s (%s)", pkg.Name, elapsed.Round(time.Millisecond)))
	return Result{Package: *pkg, Duration: elapsed}, nil
}

// Options configures Build.
type Options struct {
	Root   string
	Filter workspace.Filter
	Runner Runner
	Log    zerolog.Logger
	// Out receives progress lines; nil means stderr.
	Out    io.Writer
	DryRun bool
}

// Build resolves the project at opts.Root and builds the selected packages.
// A workspace without members builds nothing and is not an error.
func Build(ctx context.Context, opts Options) (*Report, error) {
	if opts.Runner == nil && !opts.DryRun {
		return nil, fmt.Errorf("build: no runner configured")
	}

	wctx, err := workspace.Load(opts.Root)
	if err != nil {
		return nil, err
	}

	plan, err := workspace.Resolve(wctx, opts.Filter)
	if err != nil {
		return nil, err
	}

	log := opts.Log
	switch wctx.Classification.(type) {
	case manifest.SingleProject:
		log.Info().Str("root", wctx.Root).Msg("Found single package project")
	case manifest.Workspace:
		log.Info().Strs("members", plan.Members).Msg("Found workspace member entries")
		log.Info().Strs("dirs", plan.Candidates).Msg("Package directories")
		log.Info().Str("prefix", opts.Filter.Prefix).Strs("dirs", plan.Selected).Msg("Packages to be built")
	case manifest.WorkspaceNoMembers:
		log.Warn().Str("manifest", wctx.ManifestPath).Msg("Cargo.toml contains a workspace key but has no workspace members")
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	o := NewOrchestrator(wctx.Root, opts.Runner, log, out)
	o.SetDryRun(opts.DryRun)

	rep, err := o.Run(ctx, plan.Selected)
	if rep != nil {
		rep.Root = wctx.Root
		rep.Mode = plan.Mode
		rep.Prefix = opts.Filter.Prefix
		rep.Plan = plan
	}
	return rep, err
}
