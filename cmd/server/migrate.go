package main

import (
	"github.com/spf13/cobra"

	"agbrain/database"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.OpenAndMigrate(cfg)
			if err != nil {
				return err
			}
			log.Info("schema migrated", "db_driver", cfg.DBDriver)
			return database.Close(db)
		},
	}
}
