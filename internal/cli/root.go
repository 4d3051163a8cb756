package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/backoffice/internal/config"
	"github.com/MrSnakeDoc/backoffice/internal/session"
	"github.com/MrSnakeDoc/backoffice/internal/version"
)

// routeKey annotates a command with the screen it stands for, checked by
// the route guard before the command runs. Commands without it need no
// backend at all.
const routeKey = "route"

// Opener builds the App for one invocation.
type Opener func(ctx context.Context) (*App, error)

type runner struct {
	open Opener
	app  *App
}

// NewRootCommand assembles every command. open is called lazily, only for
// commands that reach a backend.
func NewRootCommand(open Opener) *cobra.Command {
	r := &runner{open: open}

	root := &cobra.Command{
		Use:           "backofficectl",
		Short:         "Back-office dashboard for the website collections",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			route, ok := cmd.Annotations[routeKey]
			if !ok {
				return nil
			}
			app, err := r.open(cmd.Context())
			if err != nil {
				return err
			}
			r.app = app
			return app.guard(route)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			r.close()
		},
	}

	root.AddCommand(
		r.loginCmd(),
		r.registerCmd(),
		r.forgotPasswordCmd(),
		r.resetPasswordCmd(),
		r.logoutCmd(),
		r.resourcesCmd(),
		r.listCmd(),
		r.showCmd(),
		r.statsCmd(),
		r.createCmd(),
		r.editCmd(),
		r.deleteCmd(),
		r.emailCmd(),
		r.exportCmd(),
		r.replyCmd(),
	)
	return root
}

func (r *runner) close() {
	if r.app != nil {
		r.app.Close()
		r.app = nil
	}
}

// routed marks cmd as a screen at route.
func routed(cmd *cobra.Command, route string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeKey] = route
	return cmd
}

// home is the route of every screen behind the login.
const home = session.HomePath

// Execute runs backofficectl with the client configuration.
func Execute(ctx context.Context, cfg *config.ClientConfig, args []string, in io.Reader, out io.Writer) error {
	var opened *App
	// PersistentPostRun is skipped when a command fails.
	defer func() {
		if opened != nil {
			opened.Close()
		}
	}()

	root := NewRootCommand(func(ctx context.Context) (*App, error) {
		a, err := NewApp(ctx, cfg, in, out)
		opened = a
		return a, err
	})
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}
