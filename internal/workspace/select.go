package workspace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fbkclanna/bob/internal/manifest"
)

// Filter selects packages whose directory starts with Prefix.
// The match is a plain string prefix, not a path-component match:
// "contracts" also matches "contracts-extra/foo".
type Filter struct {
	Prefix string
}

// Match reports whether dir passes the filter.
func (f Filter) Match(dir string) bool {
	return strings.HasPrefix(dir, f.Prefix)
}

// Select sorts candidates lexicographically and keeps those matching f.
// Duplicates are kept. The input slice is not modified.
func Select(candidates []string, f Filter) []string {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	result := make([]string, 0, len(sorted))
	for _, c := range sorted {
		if f.Match(c) {
			result = append(result, c)
		}
	}
	return result
}

// Plan is the outcome of resolving a project root into packages to build.
type Plan struct {
	Mode string
	// Members is empty unless the root is a workspace.
	Members []string
	// Candidates holds every expanded package directory, sorted.
	Candidates []string
	// Selected holds the directories to build, in build order.
	Selected []string
}

// Resolve computes the build plan for a loaded context.
// A single project always selects "." regardless of the filter.
func Resolve(ctx *Context, f Filter) (*Plan, error) {
	p := &Plan{Mode: Mode(ctx.Classification)}

	switch c := ctx.Classification.(type) {
	case manifest.SingleProject:
		p.Candidates = []string{"."}
		p.Selected = []string{"."}
	case manifest.Workspace:
		p.Members = c.Members
		all, err := ExpandAll(ctx.Root, c.Members)
		if err != nil {
			return nil, err
		}
		p.Candidates = slices.Clone(all)
		slices.Sort(p.Candidates)
		p.Selected = Select(all, f)
	case manifest.WorkspaceNoMembers:
	default:
		return nil, fmt.Errorf("unexpected manifest classification %T", c)
	}
	return p, nil
}
