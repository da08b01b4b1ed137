package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

// newAPICmd exposes the authenticated API client directly. Output is always
// the raw JSON answer, pretty-printed.
func newAPICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Call any backend endpoint with the stored session",
	}

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		cmd.AddCommand(newAPIVerbCmd(app, method))
	}
	return cmd
}

func newAPIVerbCmd(app *App, method string) *cobra.Command {
	var data string
	withBody := method == http.MethodPost || method == http.MethodPut

	cmd := &cobra.Command{
		Use:   strings.ToLower(method) + " <path>",
		Short: method + " a backend path, e.g. /api/galaxies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			var in any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				in = json.RawMessage(data)
			}

			var out json.RawMessage
			if err := app.api.Do(cmd.Context(), method, path, in, &out); err != nil {
				return err
			}
			if len(out) == 0 {
				return nil
			}

			var pretty any
			if err := json.Unmarshal(out, &pretty); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), pretty)
		},
	}
	if withBody {
		cmd.Flags().StringVar(&data, "data", "", "JSON request body")
	}
	return cmd
}
