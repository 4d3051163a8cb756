package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/backoffice/internal/dashboard"
)

func (r *runner) emailCmd() *cobra.Command {
	var subject, message string
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Compose an email to the newsletter subscribers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dashboard.SendEmail(r.app.notifier, subject, message)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&message, "message", "", "email body")
	return routed(cmd, home)
}

func (r *runner) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the newsletter subscribers as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dashboard.ExportCSV(r.app.notifier)
			return nil
		},
	}
	return routed(cmd, home)
}

func (r *runner) replyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reply <contact-id>",
		Short: "Mark a contact message replied and read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := dashboard.ReplyToContact(cmd.Context(), a.registry.Contacts, a.notifier, id); err != nil {
				return err
			}
			return a.registry.Contacts.Show(cmd.Context(), a.out, id)
		},
	}
	return routed(cmd, home)
}
