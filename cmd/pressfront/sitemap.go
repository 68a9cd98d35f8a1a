package main

import (
	"github.com/spf13/cobra"
)

func sitemapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Write the sitemap XML to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()
			return app.WriteSitemap(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
