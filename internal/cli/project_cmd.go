package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
	}

	cmd.AddCommand(
		newProjectNewCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectUseCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectPhasesCmd(app),
	)

	return cmd
}

func newProjectNewCmd(app *App) *cobra.Command {
	var name, address, notes string
	var status domain.Phase

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project and make it active",
		Long:  "Create a project named \"Project N\" (or --name) and make it the active project.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Create(ctx)
			if err != nil && p.ID == "" {
				return err
			}
			if err := finish(cmd, err); err != nil {
				return err
			}

			patch := domain.ProjectPatch{
				Name:    changedString(cmd, "name", name),
				Address: changedString(cmd, "address", address),
				Notes:   changedString(cmd, "notes", notes),
			}
			if cmd.Flags().Changed("status") {
				patch.Status = &status
			}
			if _, err := app.Projects.Update(ctx, p.ID, patch); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}

			p, err = app.Projects.Get(ctx, p.ID)
			if err != nil {
				return err
			}
			printf(cmd, "Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (default \"Project N\")")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().Var(newPhaseValue(&status), "status", "Phase name or number (see 'project phases')")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", formatter.FormatProjectList(w))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a project overview (default: active project)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var p domain.Project
			var err error
			if len(args) == 1 {
				id, rerr := resolveProjectID(ctx, app, args[0])
				if rerr != nil {
					return rerr
				}
				p, err = app.Projects.Get(ctx, id)
			} else {
				p, err = app.Projects.Active(ctx)
			}
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", formatter.FormatProjectOverview(p))
			return nil
		},
	}
}

func newProjectUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [ID]",
		Short: "Select the active project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var id string
			switch {
			case len(args) == 1:
				resolved, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				id = resolved
			case app.interactive():
				form := selectProjectForm(ctx, app, &id)
				if form == nil {
					return errors.New("no projects yet")
				}
				if err := app.runForm(form); err != nil {
					return err
				}
			default:
				return errors.New("project ID is required")
			}

			if err := finish(cmd, app.Projects.SetActive(ctx, id)); err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, id)
			if err != nil {
				return err
			}
			printf(cmd, "Active project: %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, address, notes string
	var status domain.Phase

	cmd := &cobra.Command{
		Use:   "update [ID]",
		Short: "Edit project fields (default: active project)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := projectArgOrActive(cmd, app, args)
			if err != nil {
				return err
			}

			patch := domain.ProjectPatch{
				Name:    changedString(cmd, "name", name),
				Address: changedString(cmd, "address", address),
				Notes:   changedString(cmd, "notes", notes),
			}
			if cmd.Flags().Changed("status") {
				patch.Status = &status
			}

			changed, err := app.Projects.Update(ctx, id, patch)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated project %s\n", domain.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().Var(newPhaseValue(&status), "status", "Phase name or number (see 'project phases')")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a project and everything in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, id)
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				if err := app.runForm(confirmForm(fmt.Sprintf("Delete %q?", p.Name), &confirmed)); err != nil {
					return err
				}
				if !confirmed {
					printf(cmd, "Cancelled.\n")
					return nil
				}
			}

			if err := finish(cmd, app.Projects.Delete(ctx, id)); err != nil {
				return err
			}
			printf(cmd, "Deleted project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newProjectPhasesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List renovation phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var current domain.Phase
			p, err := app.Projects.Active(cmd.Context())
			switch {
			case err == nil:
				current = p.Status
			case !errors.Is(err, service.ErrNoActiveProject):
				return err
			}
			printf(cmd, "%s", formatter.FormatPhases(current))
			return nil
		},
	}
}

// projectArgOrActive resolves an optional project argument, falling back to
// the active project.
func projectArgOrActive(cmd *cobra.Command, app *App, args []string) (string, error) {
	if len(args) == 1 {
		return resolveProjectID(cmd.Context(), app, args[0])
	}
	p, err := app.Projects.Active(cmd.Context())
	if err != nil {
		return "", err
	}
	return p.ID, nil
}
