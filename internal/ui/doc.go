// Package ui renders human-facing output: build progress lines and tables.
package ui
