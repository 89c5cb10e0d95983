package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle = lipgloss.NewStyle().Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Progress announces the packages of a build run as they are processed.
type Progress struct {
	out     io.Writer
	total   int
	current int
	mu      sync.Mutex
}

// NewProgress creates a progress tracker for n packages.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Start announces the next package and advances the counter.
func (p *Progress) Start(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	step := stepStyle.Render(fmt.Sprintf("[%d/%d]", p.current, p.total))
	_, _ = fmt.Fprintf(p.out, "%s %s\n", step, fmt.Sprintf(format, args...))
}

// Done reports the current package as finished.
func (p *Progress) Done(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", okStyle.Render("ok"), label)
}

// Fail reports the current package as failed.
func (p *Progress) Fail(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", failStyle.Render("FAILED"), label)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
