package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *runner) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the bearer token for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := r.app
			email, err := a.valueOrPrompt(email, "Email")
			if err != nil {
				return err
			}
			pw, err := a.password("Password")
			if err != nil {
				return err
			}
			resp, err := a.auth.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			if resp.User != nil {
				fmt.Fprintf(a.out, "Signed in as %s\n", resp.User.Email)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return routed(cmd, "/auth/login")
}

func (r *runner) registerCmd() *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an administrator account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := r.app
			name, err := a.valueOrPrompt(name, "Name")
			if err != nil {
				return err
			}
			email, err := a.valueOrPrompt(email, "Email")
			if err != nil {
				return err
			}
			pw, err := a.password("Password")
			if err != nil {
				return err
			}
			_, err = a.auth.Register(cmd.Context(), name, email, pw)
			return err
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return routed(cmd, "/auth/register")
}

func (r *runner) forgotPasswordCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := r.app
			email, err := a.valueOrPrompt(email, "Email")
			if err != nil {
				return err
			}
			_, err = a.auth.ForgotPassword(cmd.Context(), email)
			return err
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return routed(cmd, "/auth/forgot-password")
}

func (r *runner) resetPasswordCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := r.app
			token, err := a.valueOrPrompt(token, "Reset token")
			if err != nil {
				return err
			}
			pw, err := a.password("New password")
			if err != nil {
				return err
			}
			_, err = a.auth.ResetPassword(cmd.Context(), token, pw)
			return err
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "reset token")
	return routed(cmd, "/auth/reset-password")
}

// logout is idempotent and never guarded.
func (r *runner) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.open(cmd.Context())
			if err != nil {
				return err
			}
			r.app = a
			if a.session == nil {
				return ErrLocalAuth
			}
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}
