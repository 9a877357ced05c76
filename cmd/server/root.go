package main

import (
	"github.com/spf13/cobra"

	"agbrain/config"
	"agbrain/pkg/logger"
)

// RootOptions holds flags shared by every command.
type RootOptions struct {
	Port    string
	LogMode string
}

// NewRootCommand builds the agbrain CLI. Running it without a subcommand
// behaves like "serve".
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "agbrain",
		Short:         "Rural producer registry and farm dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Port, "port", "", "HTTP port (overrides PORT)")
	cmd.PersistentFlags().StringVar(&opts.LogMode, "log-mode", "", "dev or prod (overrides LOG_MODE)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	return cmd
}

// load reads the environment and applies flag overrides on top.
func (o *RootOptions) load() (config.AppConfig, *logger.Logger, error) {
	cfg := config.Load()
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.LogMode != "" {
		cfg.LogMode = o.LogMode
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
