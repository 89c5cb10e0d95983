package build

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestUnreadable reports a package Cargo.toml that could not be read.
	ErrManifestUnreadable = errors.New("package manifest unreadable")
	// ErrToolInvocationFailed reports a build tool that failed to start or exited non-zero.
	ErrToolInvocationFailed = errors.New("build tool invocation failed")
)

// PackageError ties a failure to the package directory it occurred in.
type PackageError struct {
	Dir     string
	Package string // empty until the manifest is parsed
	Err     error
}

func (e *PackageError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("package %s (%s): %v", e.Package, e.Dir, e.Err)
	}
	return fmt.Sprintf("package %s: %v", e.Dir, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}
