package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and classifies a Cargo.toml file.
func Load(path string) (Classification, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the root manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Classify(data)
}

// Classify parses a manifest and reports whether it is a single package or a workspace.
func Classify(data []byte) (Classification, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	raw, ok := doc["workspace"]
	if !ok {
		return SingleProject{}, nil
	}
	ws, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed("workspace", fmt.Errorf("expected a table, got %T", raw))
	}

	members, err := stringArray(ws, "members")
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return WorkspaceNoMembers{}, nil
	}
	return Workspace{Members: members}, nil
}

// ParsePackage extracts the [package] identity from a manifest.
// The returned Package has an empty Dir; callers set it.
func ParsePackage(data []byte) (*Package, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	raw, ok := doc["package"]
	if !ok {
		return nil, missing("package")
	}
	tbl, ok := raw.(map[string]any)
	if !ok {
		return nil, malformed("package", fmt.Errorf("expected a table, got %T", raw))
	}

	rawName, ok := tbl["name"]
	if !ok {
		return nil, missing("package.name")
	}
	name, ok := rawName.(string)
	if !ok {
		return nil, malformed("package.name", fmt.Errorf("expected a string, got %T", rawName))
	}
	if name == "" {
		return nil, missing("package.name")
	}

	pkg := &Package{Name: name}
	// version.workspace = true is inherited from the root; leave it empty.
	if v, ok := tbl["version"].(string); ok {
		pkg.Version = v
	}
	return pkg, nil
}

func decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, malformed("", err)
	}
	return doc, nil
}

// stringArray returns tbl[key] as a string slice. A missing key yields nil.
func stringArray(tbl map[string]any, key string) ([]string, error) {
	raw, ok := tbl[key]
	if !ok {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, malformed("workspace."+key, fmt.Errorf("expected an array, got %T", raw))
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, malformed(fmt.Sprintf("workspace.%s[%d]", key, i), fmt.Errorf("expected a string, got %T", item))
		}
		out = append(out, s)
	}
	return out, nil
}
