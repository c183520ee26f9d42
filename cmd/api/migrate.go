package main

import (
	"errors"

	"github.com/5w1tchy/library-catalog/internal/maintenance"
	"github.com/5w1tchy/library-catalog/internal/repository/sqlconnect"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the books table and indexes if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.DatabaseURL == "" {
				return errors.New("migrate needs DATABASE_URL")
			}
			db, err := sqlconnect.ConnectDB(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := maintenance.EnsureSchema(cmd.Context(), db, a.log); err != nil {
				return err
			}
			a.log.Info("[schema] up to date")
			return nil
		},
	}
}
