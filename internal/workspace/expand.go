package workspace

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fbkclanna/bob/internal/manifest"
)

const globMeta = `*?[{\`

// Expand resolves a member pattern against root and returns the matching
// directories as slash-separated paths in the form the pattern was written
// (e.g. "contracts/*" yields "contracts/foo"). Files and broken symlinks are
// dropped. A pattern that matches nothing yields an empty slice.
func Expand(root, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(path.Clean(filepath.ToSlash(pattern)))

	baseDir := filepath.FromSlash(base)
	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(root, baseDir)
	}

	matches := []string{rest}
	if strings.ContainsAny(rest, globMeta) {
		var err error
		matches, err = doublestar.Glob(os.DirFS(baseDir), rest)
		if err != nil {
			return nil, &manifest.Error{
				Kind:  manifest.ErrMalformed,
				Field: fmt.Sprintf("workspace.members (%q)", pattern),
				Err:   err,
			}
		}
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		if !isDir(filepath.Join(baseDir, filepath.FromSlash(m))) {
			continue
		}
		dirs = append(dirs, path.Join(base, m))
	}
	return dirs, nil
}

// ExpandAll expands every pattern in order and concatenates the results.
// Overlapping patterns produce duplicate entries.
func ExpandAll(root string, patterns []string) ([]string, error) {
	var all []string
	for _, p := range patterns {
		dirs, err := Expand(root, p)
		if err != nil {
			return nil, err
		}
		all = append(all, dirs...)
	}
	return all, nil
}

// isDir follows symlinks; a broken link is not a directory.
func isDir(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}
