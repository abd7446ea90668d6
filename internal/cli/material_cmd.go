package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "material",
		Aliases: []string{"materials"},
		Short:   "Manage the materials list",
	}

	cmd.AddCommand(
		newMaterialAddCmd(app),
		newMaterialEditCmd(app),
		newMaterialRemoveCmd(app),
		newMaterialListCmd(app),
	)

	return cmd
}

// defaultMaterialUnit prefills the unit of new materials.
const defaultMaterialUnit = "each"

type materialFlags struct {
	supplier, link, room, unit, unitCost, notes string
}

func (f *materialFlags) register(cmd *cobra.Command, unitDefault, unitCostDefault string) {
	cmd.Flags().StringVar(&f.supplier, "supplier", "", "Supplier")
	cmd.Flags().StringVar(&f.link, "link", "", "Product link")
	cmd.Flags().StringVar(&f.room, "room", "", "Room name or ID (blank for unassigned)")
	cmd.Flags().StringVar(&f.unit, "unit", unitDefault, "Unit, e.g. sqft")
	cmd.Flags().StringVar(&f.unitCost, "unit-cost", unitCostDefault, "Cost per unit")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
}

func newMaterialAddCmd(app *App) *cobra.Command {
	var f materialFlags

	cmd := &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Add a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			roomID, err := resolveRoomRef(p, f.room)
			if err != nil {
				return err
			}

			name := argText(args)
			ok, err := promptIfBlank(app, &name, func() *huh.Form {
				return newForm(
					textInput("Material", "White oak flooring", &name),
					textInput("Supplier", "", &f.supplier),
					textInput("Link", "https://", &f.link),
					roomSelect(p, domain.UnassignedRoomLabel, &roomID),
					textInput("Unit", defaultMaterialUnit, &f.unit),
					amountInput("Unit cost", "0", &f.unitCost),
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

			m, added, err := app.Materials.Add(ctx, domain.MaterialEntry{
				Name:     name,
				Supplier: f.supplier,
				Link:     f.link,
				RoomID:   roomID,
				Unit:     f.unit,
				UnitCost: domain.ParseNonNegative(f.unitCost),
				Notes:    f.notes,
			})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added material %s [%s]\n", m.Name, domain.ShortID(m.ID))
			return nil
		},
	}

	f.register(cmd, defaultMaterialUnit, "0")
	return cmd
}

func newMaterialEditCmd(app *App) *cobra.Command {
	var f materialFlags
	var name string

	cmd := &cobra.Command{
		Use:   "edit MATERIAL",
		Short: "Edit a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveMaterialID(p, args[0])
			if err != nil {
				return err
			}

			patch := domain.MaterialPatch{
				Name:     changedString(cmd, "name", name),
				Supplier: changedString(cmd, "supplier", f.supplier),
				Link:     changedString(cmd, "link", f.link),
				Unit:     changedString(cmd, "unit", f.unit),
				UnitCost: changedAmount(cmd, "unit-cost", f.unitCost, true),
				Notes:    changedString(cmd, "notes", f.notes),
			}
			if cmd.Flags().Changed("room") {
				roomID, err := resolveRoomRef(p, f.room)
				if err != nil {
					return err
				}
				patch.RoomID = &roomID
			}

			changed, err := app.Materials.Edit(ctx, id, patch)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated material %s\n", domain.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Material name")
	f.register(cmd, "", "")
	return cmd
}

func newMaterialRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove MATERIAL",
		Aliases: []string{"rm"},
		Short:   "Remove a material",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveMaterialID(p, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Materials.Remove(ctx, id); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed material %s\n", domain.ShortID(id))
			return nil
		},
	}
}

func newMaterialListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List materials",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatMaterials(p))
			return nil
		},
	}
}
