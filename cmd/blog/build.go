package main

import (
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the blog as a static site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				opts.cfg.OutputDir = out
			}
			app, err := opts.open()
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Build(cmd.Context(), app.Config.OutputDir)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from config, then \"dist\")")
	return cmd
}
