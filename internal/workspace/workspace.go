package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/fbkclanna/bob/internal/manifest"
)

// DefaultPrefix is the package prefix used when none is configured.
const DefaultPrefix = "contracts/"

// Context holds the resolved root and the classification of its manifest.
type Context struct {
	Root           string
	ManifestPath   string
	Classification manifest.Classification
}

// Load resolves the project root and classifies its Cargo.toml.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	manifestPath := filepath.Join(root, manifest.FileName)
	c, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}

	return &Context{
		Root:           root,
		ManifestPath:   manifestPath,
		Classification: c,
	}, nil
}

// Dir returns the absolute path of a root-relative package directory.
func (c *Context) Dir(rel string) string {
	return Abs(c.Root, rel)
}

// Abs joins a slash-separated package directory onto root.
// Absolute directories are returned unchanged.
func Abs(root, rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// Mode names the classification for reports and listings.
func Mode(c manifest.Classification) string {
	switch c.(type) {
	case manifest.SingleProject:
		return "single"
	case manifest.Workspace:
		return "workspace"
	case manifest.WorkspaceNoMembers:
		return "workspace (no members)"
	default:
		return "unknown"
	}
}
