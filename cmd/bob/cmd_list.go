package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/bob/internal/manifest"
	"github.com/fbkclanna/bob/internal/ui"
	"github.com/fbkclanna/bob/internal/workspace"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List package directories and whether they would be built",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().String("prefix", "", "Package prefix to evaluate (overrides PACKAGE_PREFIX)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type packageStatus struct {
	Dir      string `json:"dir"`
	Package  string `json:"package,omitempty"`
	Version  string `json:"version,omitempty"`
	Selected bool   `json:"selected"`
	Error    string `json:"error,omitempty"`
}

type listing struct {
	Mode     string          `json:"mode"`
	Prefix   string          `json:"prefix"`
	Members  []string        `json:"members,omitempty"`
	Packages []packageStatus `json:"packages"`
}

func runList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, err := workspace.Load(s.root)
	if err != nil {
		return err
	}
	plan, err := workspace.Resolve(ctx, s.filter())
	if err != nil {
		return err
	}

	l := listing{
		Mode:     plan.Mode,
		Prefix:   s.cfg.PackagePrefix,
		Members:  plan.Members,
		Packages: make([]packageStatus, 0, len(plan.Candidates)),
	}
	selected := make(map[string]bool, len(plan.Selected))
	for _, d := range plan.Selected {
		selected[d] = true
	}
	for _, d := range plan.Candidates {
		l.Packages = append(l.Packages, collectPackage(ctx, d, selected[d]))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}

	_, _ = fmt.Fprintf(out, "Mode: %s\n", l.Mode)
	if len(l.Members) > 0 {
		_, _ = fmt.Fprintf(out, "Members: %v\n", l.Members)
		_, _ = fmt.Fprintf(out, "Prefix: %q\n", l.Prefix)
	}
	tbl := ui.NewTable(out, "DIR", "PACKAGE", "VERSION", "SELECTED")
	for _, p := range l.Packages {
		name := p.Package
		if p.Error != "" {
			name = "(" + p.Error + ")"
		}
		tbl.Row(p.Dir, name, p.Version, p.Selected)
	}
	return tbl.Flush()
}

// collectPackage reads the package manifest in dir. Errors are reported in
// the status rather than failing the listing.
func collectPackage(ctx *workspace.Context, dir string, selected bool) packageStatus {
	s := packageStatus{Dir: dir, Selected: selected}

	data, err := os.ReadFile(filepath.Join(ctx.Dir(dir), manifest.FileName)) //nolint:gosec // path is a package directory
	if err != nil {
		s.Error = "no " + manifest.FileName
		return s
	}
	pkg, err := manifest.ParsePackage(data)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Package = pkg.Name
	s.Version = pkg.Version
	return s
}
