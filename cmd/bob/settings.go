package main

import (
	"github.com/fbkclanna/bob/internal/config"
	"github.com/fbkclanna/bob/internal/logging"
	"github.com/fbkclanna/bob/internal/workspace"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// settings is the resolved configuration shared by all subcommands.
type settings struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

// loadSettings reads configuration for the command and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	root, _ := cmd.Flags().GetString("root")
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(root, cfgPath)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		cfg.Log.Format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("prefix"); f != nil && f.Changed {
		cfg.PackagePrefix = f.Value.String()
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return &settings{root: root, cfg: cfg, log: log}, nil
}

func (s *settings) filter() workspace.Filter {
	return workspace.Filter{Prefix: s.cfg.PackagePrefix}
}
