package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/bob/internal/config"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

type setupStep int

const (
	stepPrefix setupStep = iota
	stepCommand
	stepStrip
	stepDone
)

// setupModel walks through the bob.yaml questions one at a time.
type setupModel struct {
	input   textinput.Model
	step    setupStep
	prefix  string
	command string
	strip   bool
	errMsg  string
	aborted bool
}

func newSetupModel(cfg *config.Config) setupModel {
	ti := textinput.New()
	ti.SetValue(cfg.PackagePrefix)
	ti.Focus()
	return setupModel{
		input:   ti,
		prefix:  cfg.PackagePrefix,
		command: strings.Join(cfg.Build.Command, " "),
		strip:   cfg.Build.Env["RUSTFLAGS"] != "",
	}
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if ok && (key.String() == "ctrl+c" || key.String() == "esc") {
		m.aborted = true
		return m, tea.Quit
	}

	if m.step == stepStrip {
		if !ok {
			return m, nil
		}
		switch key.String() {
		case "y", "Y":
			m.strip = true
		case "n", "N":
			m.strip = false
		case "left", "right", "tab", "h", "l":
			m.strip = !m.strip
			return m, nil
		case "enter":
		default:
			return m, nil
		}
		m.step = stepDone
		return m, tea.Quit
	}

	if ok && key.String() == "enter" {
		value := strings.TrimSpace(m.input.Value())
		if m.step == stepPrefix {
			if err := validatePrefix(value); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.prefix = value
			m.step = stepCommand
			m.input.SetValue(m.command)
			m.errMsg = ""
			return m, nil
		}
		if err := validateCommand(value); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.command = value
		m.step = stepStrip
		m.input.Blur()
		m.errMsg = ""
		return m, nil
	}

	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.step == stepDone {
		return ""
	}
	var b strings.Builder
	if m.step > stepPrefix {
		b.WriteString(answerStyle.Render("Package prefix: "+m.prefix) + "\n")
	}
	if m.step > stepCommand {
		b.WriteString(answerStyle.Render("Build command: "+m.command) + "\n")
	}

	switch m.step {
	case stepPrefix:
		b.WriteString(titleStyle.Render("Package prefix to build") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stepCommand:
		b.WriteString(titleStyle.Render("Build command") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stepStrip:
		yes, no := " Yes ", " No "
		if m.strip {
			yes = selectedStyle.Render(yes)
		} else {
			no = selectedStyle.Render(no)
		}
		_, _ = fmt.Fprintf(&b, "%s %s / %s\n", titleStyle.Render("Strip debug symbols (RUSTFLAGS=-C link-arg=-s)?"), yes, no)
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// apply copies the answers into cfg.
func (m setupModel) apply(cfg *config.Config) {
	cfg.PackagePrefix = m.prefix
	cfg.Build.Command = strings.Fields(m.command)
	if m.strip {
		if cfg.Build.Env == nil {
			cfg.Build.Env = map[string]string{}
		}
		cfg.Build.Env["RUSTFLAGS"] = config.DefaultRustFlags
	} else {
		delete(cfg.Build.Env, "RUSTFLAGS")
	}
}

// interactiveConfig asks for the package prefix and build command,
// starting from the values already in cfg.
func interactiveConfig(cfg *config.Config) error {
	result, err := tea.NewProgram(newSetupModel(cfg)).Run()
	if err != nil {
		return err
	}
	m := result.(setupModel)
	if m.aborted {
		return fmt.Errorf("user aborted")
	}
	m.apply(cfg)
	return nil
}

// validatePrefix rejects absolute prefixes; candidates are always root-relative.
func validatePrefix(s string) error {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "/") {
		return fmt.Errorf("prefix must be relative to the project root")
	}
	if strings.HasPrefix(s, "./") {
		return fmt.Errorf("prefix must not start with ./ (package directories are written without it)")
	}
	return nil
}

func validateCommand(s string) error {
	if len(strings.Fields(s)) == 0 {
		return fmt.Errorf("build command is required")
	}
	return nil
}
