package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage budget line items, tax and contingency",
	}

	cmd.AddCommand(
		newBudgetAddCmd(app),
		newBudgetEditCmd(app),
		newBudgetRemoveCmd(app),
		newBudgetTaxCmd(app),
		newBudgetContingencyCmd(app),
		newBudgetShowCmd(app),
	)

	return cmd
}

func newBudgetAddCmd(app *App) *cobra.Command {
	var room, category, qty, unitCost string

	cmd := &cobra.Command{
		Use:   "add [DESCRIPTION...]",
		Short: "Add a budget line item",
		Long:  "Add a line item contributing qty × unit cost to the subtotal. Quantity defaults to 1;\nnegative or non-numeric amounts are stored as 0.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}

			desc := argText(args)
			roomID, err := resolveRoomRef(p, room)
			if err != nil {
				return err
			}
			ok, err := promptIfBlank(app, &desc, func() *huh.Form {
				return newForm(
					textInput("Description", "Cabinet install", &desc),
					roomSelect(p, domain.UnassignedRoomLabel, &roomID),
					textInput("Category", "Cabinetry", &category),
					amountInput("Qty", "1", &qty),
					amountInput("Unit cost", "0", &unitCost),
				)
			})
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}

			item, added, err := app.Budget.AddItem(ctx, domain.BudgetLineItem{
				RoomID:   roomID,
				Category: category,
				Desc:     desc,
				Qty:      domain.ParseNonNegative(qty),
				UnitCost: domain.ParseNonNegative(unitCost),
			})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added %s: %s × %s = %s [%s]\n",
				item.Desc, formatter.Number(item.Qty), formatter.Currency(item.UnitCost),
				formatter.Currency(item.LineTotal()), domain.ShortID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&room, "room", "", "Room name or ID (blank for unassigned)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&qty, "qty", "1", "Quantity")
	cmd.Flags().StringVar(&unitCost, "unit-cost", "0", "Unit cost")

	return cmd
}

func newBudgetEditCmd(app *App) *cobra.Command {
	var room, category, desc, qty, unitCost string

	cmd := &cobra.Command{
		Use:   "edit ITEM",
		Short: "Edit a budget line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveBudgetItemID(p, args[0])
			if err != nil {
				return err
			}

			patch := domain.BudgetItemPatch{
				Category: changedString(cmd, "category", category),
				Desc:     changedString(cmd, "desc", desc),
				Qty:      changedAmount(cmd, "qty", qty, true),
				UnitCost: changedAmount(cmd, "unit-cost", unitCost, true),
			}
			if cmd.Flags().Changed("room") {
				roomID, err := resolveRoomRef(p, room)
				if err != nil {
					return err
				}
				patch.RoomID = &roomID
			}

			changed, err := app.Budget.EditItem(ctx, id, patch)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated budget item %s\n", domain.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&room, "room", "", "Room name or ID (blank for unassigned)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&qty, "qty", "", "Quantity")
	cmd.Flags().StringVar(&unitCost, "unit-cost", "", "Unit cost")

	return cmd
}

func newBudgetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ITEM",
		Aliases: []string{"rm"},
		Short:   "Remove a budget line item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveBudgetItemID(p, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Budget.RemoveItem(ctx, id); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed budget item %s\n", domain.ShortID(id))
			return nil
		},
	}
}

func newBudgetTaxCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tax PERCENT",
		Short: "Set the tax rate (percent of subtotal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct := domain.ParseAmount(args[0])
			if _, err := app.Budget.SetTaxRate(cmd.Context(), pct); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Tax rate set to %s%%\n", formatter.Number(pct))
			return nil
		},
	}
}

func newBudgetContingencyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "contingency PERCENT",
		Short: "Set the contingency (percent of subtotal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct := domain.ParseAmount(args[0])
			if _, err := app.Budget.SetContingency(cmd.Context(), pct); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Contingency set to %s%%\n", formatter.Number(pct))
			return nil
		},
	}
}

func newBudgetShowCmd(app *App) *cobra.Command {
	var byRoom bool

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"list", "ls"},
		Short:   "Show line items and totals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			if byRoom {
				printf(cmd, "%s", formatter.FormatBudgetByRoom(p))
				return nil
			}
			printf(cmd, "%s", formatter.FormatBudget(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byRoom, "by-room", false, "Group subtotals by room")

	return cmd
}
