package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newVendorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendor",
		Aliases: []string{"vendors"},
		Short:   "Manage vendor contacts",
	}

	cmd.AddCommand(
		newVendorAddCmd(app),
		newVendorEditCmd(app),
		newVendorRemoveCmd(app),
		newVendorListCmd(app),
	)

	return cmd
}

type vendorFlags struct {
	role, phone, email, notes string
}

func (f *vendorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.role, "role", "", "Role, e.g. GC, Plumber, Designer")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&f.email, "email", "", "Email")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
}

func newVendorAddCmd(app *App) *cobra.Command {
	var f vendorFlags

	cmd := &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Add a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := argText(args)
			ok, err := promptIfBlank(app, &name, func() *huh.Form {
				return newForm(
					textInput("Name", "Acme Builders", &name),
					textInput("Role", "GC, Plumber, Designer", &f.role),
					textInput("Phone", "", &f.phone),
					textInput("Email", "", &f.email),
					huh.NewText().Title("Notes").Value(&f.notes),
				)
			})
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}

			v, added, err := app.Vendors.Add(cmd.Context(), domain.VendorEntry{
				Name:  name,
				Role:  f.role,
				Phone: f.phone,
				Email: f.email,
				Notes: f.notes,
			})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added vendor %s [%s]\n", v.Name, domain.ShortID(v.ID))
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newVendorEditCmd(app *App) *cobra.Command {
	var f vendorFlags
	var name string

	cmd := &cobra.Command{
		Use:   "edit VENDOR",
		Short: "Edit a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveVendorID(p, args[0])
			if err != nil {
				return err
			}

			changed, err := app.Vendors.Edit(ctx, id, domain.VendorPatch{
				Name:  changedString(cmd, "name", name),
				Role:  changedString(cmd, "role", f.role),
				Phone: changedString(cmd, "phone", f.phone),
				Email: changedString(cmd, "email", f.email),
				Notes: changedString(cmd, "notes", f.notes),
			})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated vendor %s\n", domain.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Vendor name")
	f.register(cmd)
	return cmd
}

func newVendorRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove VENDOR",
		Aliases: []string{"rm"},
		Short:   "Remove a vendor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveVendorID(p, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Vendors.Remove(ctx, id); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed vendor %s\n", domain.ShortID(id))
			return nil
		},
	}
}

func newVendorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List vendors",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatVendors(p))
			return nil
		},
	}
}
