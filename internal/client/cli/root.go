package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/lumina/internal/buildinfo"
	"github.com/spf13/cobra"
)

const skipBootstrap = "skip-bootstrap"

type rootOptions struct {
	json bool
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "lumina",
		Short: "Command-line client for the Lumina project forge",
		Long: `lumina talks to the Lumina backend: galaxies, solar systems, projects,
community ideas and the admin dashboard.

Configuration flags (accepted before or after the command):
  -a URL      backend base URL
  -e ENV      production or local
  -d PATH     local database path
  -t SECONDS  request timeout
  -l LEVEL    log level
  -c FILE     JSON config file

Environment Variables:
  LUMINA_ENV, LUMINA_API_BASE_URL, LUMINA_DB_PATH,
  LUMINA_REQUEST_TIMEOUT, LUMINA_LOG_LEVEL`,
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if _, skip := cmd.Annotations[skipBootstrap]; skip {
				return
			}
			if err := app.session.Bootstrap(cmd.Context()); err != nil {
				app.log.Warn(cmd.Context(), "session bootstrap failed", "error", err)
			}
		},
	}
	root.SetOut(app.out)
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Output JSON instead of human-readable text")

	root.AddCommand(
		newLoginCmd(app, opts),
		newRegisterCmd(app, opts),
		newLogoutCmd(app, opts),
		newWhoamiCmd(app, opts),
		newStatusCmd(app, opts),
		newAPICmd(app),
		newGalaxiesCmd(app, opts),
		newProjectsCmd(app, opts),
		newIdeasCmd(app, opts),
		newAdminCmd(app, opts),
		newVersionCmd(app, opts),
	)
	return root
}

// Execute runs the command tree with args (without the program name).
func Execute(ctx context.Context, app *App, args []string) error {
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func noBootstrap() map[string]string {
	return map[string]string{skipBootstrap: "true"}
}

func (o *rootOptions) emit(w io.Writer, v any, human func()) error {
	if o.json {
		return writeJSON(w, v)
	}
	human()
	return nil
}
