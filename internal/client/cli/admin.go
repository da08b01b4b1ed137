package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lumina/internal/client/services"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *App, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.admin.Stats(cmd.Context())
			if errors.Is(err, services.ErrAdminRequired) {
				return fmt.Errorf("%w: log in with an admin account first", err)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return opts.emit(w, stats, func() {
				heading(w, "Admin dashboard")
				field(w, "Users", fmt.Sprint(stats.TotalUsers))
				field(w, "Posts", fmt.Sprint(stats.TotalPosts))
				field(w, "Ideas", fmt.Sprint(stats.TotalProjectIdeas))
				field(w, "Submissions", fmt.Sprint(stats.TotalSubmissions))
				field(w, "Pending subs", fmt.Sprint(stats.PendingSubmissions))
				field(w, "Pending ideas", fmt.Sprint(stats.PendingProjectIdeas))
			})
		},
	})
	return cmd
}
