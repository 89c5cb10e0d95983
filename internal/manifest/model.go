package manifest

// FileName is the manifest file looked up in the root and in every package directory.
const FileName = "Cargo.toml"

// Classification is the result of inspecting a root manifest.
// It is one of SingleProject, Workspace or WorkspaceNoMembers.
type Classification interface {
	classification()
}

// SingleProject is a manifest without a [workspace] table.
type SingleProject struct{}

// Workspace is a manifest whose [workspace] table declares members.
type Workspace struct {
	// Members holds the glob patterns in declared order.
	Members []string
}

// WorkspaceNoMembers is a manifest with a [workspace] table but no members.
type WorkspaceNoMembers struct{}

func (SingleProject) classification()      {}
func (Workspace) classification()          {}
func (WorkspaceNoMembers) classification() {}

// Package is the identity of a single buildable package.
type Package struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Dir is the package directory relative to the workspace root.
	Dir string `json:"dir" yaml:"dir"`
}

// String returns the package name.
func (p *Package) String() string {
	return p.Name
}
