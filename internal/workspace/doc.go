// Package workspace resolves a Cargo project root into the ordered set of
// package directories to build. It loads the root manifest, expands workspace
// member patterns into directories and applies the package prefix filter.
package workspace
