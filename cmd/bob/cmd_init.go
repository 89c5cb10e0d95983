package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/bob/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create bob.yaml in the project root",
		Long: `Init writes bob.yaml with the package prefix and build command.
When run in a terminal without flags it asks for each value interactively.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().String("prefix", "", "Package prefix to build (default \"contracts/\")")
	cmd.Flags().String("command", "", "Build command, split on whitespace")
	cmd.Flags().Bool("force", false, "Overwrite an existing bob.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	force, _ := cmd.Flags().GetBool("force")

	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	prefixFlag := cmd.Flags().Lookup("prefix")
	commandFlag := cmd.Flags().Lookup("command")
	if prefixFlag.Changed {
		if err := validatePrefix(prefixFlag.Value.String()); err != nil {
			return err
		}
		cfg.PackagePrefix = strings.TrimSpace(prefixFlag.Value.String())
	}
	if commandFlag.Changed {
		cfg.Build.Command = strings.Fields(commandFlag.Value.String())
	}

	if !prefixFlag.Changed && !commandFlag.Changed && term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // fd fits in int
		if err := interactiveConfig(cfg); err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	data, err := buildConfigFile(cfg)
	if err != nil {
		return fmt.Errorf("building %s: %w", config.FileName, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// buildConfigFile validates cfg and renders the persisted subset as YAML.
func buildConfigFile(cfg *config.Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	file := config.Config{
		PackagePrefix: cfg.PackagePrefix,
		Build:         cfg.Build,
	}
	return yaml.Marshal(&file)
}
