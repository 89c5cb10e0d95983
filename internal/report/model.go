package report

// File represents a build report written by `bob build --report`.
type File struct {
	Version     int       `yaml:"version"`
	GeneratedAt string    `yaml:"generated_at"`
	ToolVersion string    `yaml:"tool_version"`
	Root        string    `yaml:"root"`
	Commit      string    `yaml:"commit,omitempty"`
	Dirty       bool      `yaml:"dirty,omitempty"`
	Mode        string    `yaml:"mode"`
	Prefix      string    `yaml:"prefix"`
	Packages    []Package `yaml:"packages"`
}

// Package records one successful package build.
type Package struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version,omitempty"`
	Dir      string `yaml:"dir"`
	Duration string `yaml:"duration"`
}
