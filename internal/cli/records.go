package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/backoffice/internal/dashboard"
	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func (r *runner) resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the collections and their routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, res := range domain.Resources() {
				fmt.Fprintf(out, "%-14s %-12s %s\n", res.Plural, res.Name, res.Route)
			}
			return nil
		},
	}
}

func (r *runner) listCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Show the statistics and cards of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctl, err := a.controller(args[0])
			if err != nil {
				return err
			}
			if search != "" {
				if ctl.Resource() != domain.Subscribers {
					return fmt.Errorf("--search only applies to %s", domain.Subscribers.Plural)
				}
				return a.registry.Subs.RenderFiltered(cmd.Context(), a.out, func(s []domain.Subscriber) []domain.Subscriber {
					return dashboard.FilterSubscribers(s, search)
				})
			}
			return ctl.Render(cmd.Context(), a.out)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter newsletter subscribers by name or email")
	return routed(cmd, home)
}

func (r *runner) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <resource> <id>",
		Short: "Show one record with every form field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctl, err := a.controller(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return ctl.Show(cmd.Context(), a.out, id)
		},
	}
	return routed(cmd, home)
}

func (r *runner) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [resource...]",
		Short: "Show the summary statistics of some or all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctls := a.registry.All()
			if len(args) > 0 {
				ctls = ctls[:0:0]
				for _, name := range args {
					ctl, err := a.controller(name)
					if err != nil {
						return err
					}
					ctls = append(ctls, ctl)
				}
			}
			for _, ctl := range ctls {
				stats, err := ctl.Stats(cmd.Context())
				if err != nil {
					return err
				}
				parts := make([]string, 0, len(stats))
				for _, st := range stats {
					parts = append(parts, st.Label+": "+st.Value)
				}
				fmt.Fprintf(a.out, "%s\n  %s\n", ctl.Resource().Plural, strings.Join(parts, " | "))
			}
			return nil
		},
	}
	return routed(cmd, home)
}

func (r *runner) createCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "create <resource> --set field=value...",
		Short: "Submit a new record through the create form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctl, err := a.controller(args[0])
			if err != nil {
				return err
			}
			values, err := parseSet(sets)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				fmt.Fprintf(a.out, "Fields: %s\n", strings.Join(ctl.Fields(), ", "))
				return fmt.Errorf("nothing to create, pass --set field=value")
			}
			id, err := ctl.CreateValues(cmd.Context(), values)
			if err != nil {
				return err
			}
			return ctl.Show(cmd.Context(), a.out, id)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "form field as field=value, repeatable (lists are comma separated)")
	return routed(cmd, home)
}

func (r *runner) editCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "edit <resource> <id> --set field=value...",
		Short: "Change fields of a record through the edit form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctl, err := a.controller(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			values, err := parseSet(sets)
			if err != nil {
				return err
			}
			if err := ctl.EditValues(cmd.Context(), id, values); err != nil {
				return err
			}
			return ctl.Show(cmd.Context(), a.out, id)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "form field as field=value, repeatable (lists are comma separated)")
	return routed(cmd, home)
}

func (r *runner) deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := r.app
			ctl, err := a.controller(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			return ctl.Delete(cmd.Context(), id)
		},
	}
	return routed(cmd, home)
}
