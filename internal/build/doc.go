// Package build drives the external build tool over the packages selected
// from a project root. Packages are built one at a time in selection order and
// the first failure aborts the run.
package build
