package cli

import (
	"github.com/dmitrijs2005/lumina/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: noBootstrap(),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Current()
			return opts.emit(cmd.OutOrStdout(), info, func() {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			})
		},
	}
}
