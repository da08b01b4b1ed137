package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/session"
	"github.com/dmitrijs2005/lumina/internal/common"
	"github.com/spf13/cobra"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func newLoginCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "login [username]",
		Short:       "Log in with username or email",
		Args:        cobra.MaximumNArgs(1),
		Annotations: noBootstrap(),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := usernameArg(app, args)
			if err != nil {
				return err
			}

			password, err := getPassword(cmd.OutOrStdout(), "Enter password")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			if err := app.session.Login(cmd.Context(), username, string(password)); err != nil {
				return err
			}

			user, _ := app.session.User()
			return opts.emit(cmd.OutOrStdout(), user, func() {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Logged in as "+user.Username))
			})
		},
	}
}

func usernameArg(app *App, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return getSimpleText(app.reader, "Enter username or email", app.out)
}

func newRegisterCmd(app *App, opts *rootOptions) *cobra.Command {
	var bio string

	cmd := &cobra.Command{
		Use:         "register",
		Short:       "Create an account and log in",
		Args:        cobra.NoArgs,
		Annotations: noBootstrap(),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := getSimpleText(app.reader, "Choose a username", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			email, err := getSimpleText(app.reader, "Enter email", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			password, err := getPassword(cmd.OutOrStdout(), "Choose password")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			req := models.RegisterRequest{Username: username, Email: email, Password: string(password), Bio: bio}
			if err := app.session.Register(cmd.Context(), req); err != nil {
				return err
			}

			user, _ := app.session.User()
			return opts.emit(cmd.OutOrStdout(), user, func() {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Welcome, "+user.Username+"!"))
			})
		},
	}
	cmd.Flags().StringVar(&bio, "bio", "", "Short profile bio")
	return cmd
}

func newLogoutCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Log out and forget the stored session",
		Args:        cobra.NoArgs,
		Annotations: noBootstrap(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}
			return opts.emit(cmd.OutOrStdout(), models.Message{Message: "Logged out"}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			})
		},
	}
}

func newWhoamiCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := app.session.User()
			if !ok {
				var err error
				if user, err = app.session.CurrentUser(cmd.Context()); err != nil {
					return err
				}
			}

			return opts.emit(cmd.OutOrStdout(), user, func() {
				w := cmd.OutOrStdout()
				heading(w, user.Username)
				field(w, "ID", user.ID)
				field(w, "Email", user.Email)
				if user.Bio != "" {
					field(w, "Bio", user.Bio)
				}
				if user.IsAdmin {
					field(w, "Role", "admin")
				}
				field(w, "Badges", fmt.Sprint(len(user.Badges)))
				field(w, "Galaxies", fmt.Sprint(len(user.UnlockedGalaxies)))
			})
		},
	}
}

type statusView struct {
	BaseURL   string     `json:"base_url"`
	State     string     `json:"state"`
	Username  string     `json:"username,omitempty"`
	Admin     bool       `json:"admin"`
	Subject   string     `json:"token_subject,omitempty"`
	ExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	Expired   bool       `json:"token_expired"`
}

func newStatusCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session state and token expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v := statusView{BaseURL: app.baseURL, State: app.session.State().String()}

			principal := app.session.Principal()
			if m, ok := principal.(session.Member); ok {
				v.Username = m.User.Username
			}
			v.Admin = session.IsAdmin(principal)

			// Opaque tokens have no readable expiry.
			expiry := "unknown"
			info, err := app.session.TokenInfo(ctx)
			if err == nil {
				v.Subject = info.Subject
				if !info.ExpiresAt.IsZero() {
					exp := info.ExpiresAt
					v.ExpiresAt = &exp
					v.Expired = info.Expired(app.now())
					expiry = exp.Local().Format(time.RFC1123)
				}
			} else if !errors.Is(err, session.ErrOpaqueToken) {
				expiry = "-"
			}

			return opts.emit(cmd.OutOrStdout(), v, func() {
				w := cmd.OutOrStdout()
				heading(w, "Lumina")
				field(w, "Backend", v.BaseURL)
				if v.State == session.StateAuthenticated.String() {
					field(w, "Session", okStyle.Render(v.State))
				} else {
					field(w, "Session", warnStyle.Render(v.State))
				}
				if v.Username != "" {
					field(w, "User", v.Username)
				}
				if v.Expired {
					expiry += " " + warnStyle.Render("(expired)")
				}
				field(w, "Token expiry", expiry)
			})
		},
	}
}
