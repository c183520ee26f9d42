package main

import (
	"fmt"

	"github.com/5w1tchy/library-catalog/internal/export"
	"github.com/5w1tchy/library-catalog/internal/storage/s3"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Upload a JSON snapshot of the catalog to the configured bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := s3.NewClient(ctx, a.cfg.S3)
			if err != nil {
				return err
			}
			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := export.New(store, client, a.log).Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d books\nkey: %s\nurl: %s\n", res.Count, res.Key, res.URL)
			return nil
		},
	}
}
