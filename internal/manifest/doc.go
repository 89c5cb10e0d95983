// Package manifest interprets Cargo.toml documents.
// It classifies a root manifest as a single package or a workspace and
// extracts package identity from package-level manifests.
package manifest
