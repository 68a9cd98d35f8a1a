package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the path of every post, one per line",
		Long: `paths walks the whole catalog using the page count the content API
declares and prints /posts/{slug} for every post. Any upstream error aborts
the listing with a non-zero exit status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			paths, err := app.PostPaths(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
