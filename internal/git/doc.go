// Package git wraps the few Git CLI queries bob needs to stamp build reports:
// whether a directory is a repository, its HEAD commit and its dirty state.
package git
