package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bob",
		Short:         "Build the contract packages of a Cargo workspace",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Project root containing Cargo.toml")
	cmd.PersistentFlags().String("config", "", "Config file (default <root>/bob.yaml if present)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "", "Log format: console, json")

	cmd.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newRunCmd(),
		newDoctorCmd(),
		newInitCmd(),
	)

	return cmd
}
