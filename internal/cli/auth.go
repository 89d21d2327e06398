package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydesk/internal/core/model"
)

func (r *root) loginCommand() *cobra.Command {
	var email, password, googleCode string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the studydesk server",
		Long: `Sign in with email and password, or with a Google authorization code.
Missing values are prompted for. The session is kept until logout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var user *model.User
			var err error
			if googleCode != "" {
				user, err = r.app.Client.GoogleLogin(ctx, googleCode)
			} else {
				input, promptErr := promptLogin(newPrompter(cmd), email, password)
				if promptErr != nil {
					return promptErr
				}
				user, err = r.app.Client.Login(ctx, input)
			}
			if err != nil {
				return err
			}

			if err := r.app.Session.SetUser(*user, r.app.Client.Cookies()); err != nil {
				r.app.Logger.Warn("session not saved", "error", err)
			}
			printDone(cmd.OutOrStdout(), "Signed in as %s <%s>", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&googleCode, "google-code", "", "Google OAuth authorization code")
	cmd.MarkFlagsMutuallyExclusive("google-code", "email")
	cmd.MarkFlagsMutuallyExclusive("google-code", "password")
	return cmd
}

func promptLogin(p *prompter, email, password string) (model.LoginInput, error) {
	var err error
	if email, err = p.valueOr(email, "Email", false); err != nil {
		return model.LoginInput{}, err
	}
	if password, err = p.valueOr(password, "Password", true); err != nil {
		return model.LoginInput{}, err
	}
	return model.LoginInput{Email: email, Password: password}, nil
}

func (r *root) registerCommand() *cobra.Command {
	var input model.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a studydesk account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			var err error
			if input.Name, err = p.valueOr(input.Name, "Name", false); err != nil {
				return err
			}
			if input.Email, err = p.valueOr(input.Email, "Email", false); err != nil {
				return err
			}
			if input.Password, err = p.valueOr(input.Password, "Password", true); err != nil {
				return err
			}

			user, err := r.app.Client.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Account created for %s. Sign in with `studydesk login`.", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", fmt.Sprintf("password, at least %d characters", model.MinPasswordLength))
	return cmd
}

func (r *root) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !r.app.Session.LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}

			message, err := r.app.Client.Logout(cmd.Context())
			if err != nil {
				r.app.Logger.Warn("server logout failed", "error", err)
			}
			if err := r.app.Session.ClearUser(); err != nil {
				return err
			}
			if message == "" {
				message = "Signed out."
			}
			printDone(cmd.OutOrStdout(), "%s", message)
			return nil
		},
	}
}

func (r *root) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.requireUser(); err != nil {
				return err
			}
			user, err := r.app.Client.CurrentUser(cmd.Context())
			if err != nil {
				return r.checkAuth(err)
			}
			if err := r.app.Session.SetUser(*user, r.app.Client.Cookies()); err != nil {
				r.app.Logger.Warn("session not saved", "error", err)
			}
			printUser(cmd, user)
			return nil
		},
	}
}

func printUser(cmd *cobra.Command, user *model.User) {
	out := cmd.OutOrStdout()
	printField(out, "Name", user.Name)
	printField(out, "Email", user.Email)
	provider := string(user.AuthProvider)
	if provider == "" {
		provider = string(model.AuthLocal)
	}
	printField(out, "Sign-in", provider)
	printField(out, "Member since", formatDate(user.CreatedAt))
}

func (r *root) profileCommand() *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account profile",
	}

	var input model.ProfileUpdate
	update := &cobra.Command{
		Use:   "update",
		Short: "Change your name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.requireUser(); err != nil {
				return err
			}
			user, err := r.app.Client.UpdateProfile(cmd.Context(), input)
			if err != nil {
				return r.checkAuth(err)
			}
			if err := r.app.Session.SetUser(*user, r.app.Client.Cookies()); err != nil {
				r.app.Logger.Warn("session not saved", "error", err)
			}
			printDone(cmd.OutOrStdout(), "Profile updated.")
			printUser(cmd, user)
			return nil
		},
	}
	update.Flags().StringVar(&input.Name, "name", "", "new display name")
	update.Flags().StringVar(&input.Email, "email", "", "new email")
	profile.AddCommand(update)
	return profile
}

func (r *root) resetPasswordCommand() *cobra.Command {
	var input model.ResetPasswordInput
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			var err error
			if input.Email, err = p.valueOr(input.Email, "Email", false); err != nil {
				return err
			}
			if input.Password, err = p.valueOr(input.Password, "New password", true); err != nil {
				return err
			}
			if err := r.app.Client.ResetPassword(cmd.Context(), input); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Password updated for %s.", input.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "new password")
	return cmd
}
