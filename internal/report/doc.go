// Package report handles writing and reading of build report files.
// A report records which packages a run built, from which commit, and how
// long each build took.
package report
