package cli

import (
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newScopeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Manage a room's scope checklist",
	}

	cmd.AddCommand(
		newScopeAddCmd(app),
		newScopeToggleCmd(app),
		newScopeEditCmd(app),
		newScopeRemoveCmd(app),
	)

	return cmd
}

// activeRoom resolves a room of the active project.
func activeRoom(cmd *cobra.Command, app *App, input string) (domain.Room, error) {
	p, err := app.Projects.Active(cmd.Context())
	if err != nil {
		return domain.Room{}, err
	}
	id, err := resolveRoomID(p, input)
	if err != nil {
		return domain.Room{}, err
	}
	r, _ := p.FindRoom(id)
	return *r, nil
}

func newScopeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add ROOM [TEXT...]",
		Short: "Add a scope item to a room",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := activeRoom(cmd, app, args[0])
			if err != nil {
				return err
			}

			text := argText(args[1:])
			ok, err := promptIfBlank(app, &text, func() *huh.Form {
				return newForm(textInput("Scope item for "+room.Name, "Install cabinets", &text))
			})
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}

			item, added, err := app.Scope.Add(cmd.Context(), room.ID, text)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added to %s: %s [%s]\n", room.Name, item.Text, domain.ShortID(item.ID))
			return nil
		},
	}
}

func newScopeToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle ROOM ITEM",
		Aliases: []string{"done"},
		Short:   "Flip a scope item between done and open",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := activeRoom(cmd, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveScopeItemID(room, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Scope.Toggle(cmd.Context(), room.ID, itemID); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}

			updated, err := activeRoom(cmd, app, room.ID)
			if err != nil {
				return err
			}
			state := "open"
			for _, s := range updated.Scope {
				if s.ID == itemID && s.Done {
					state = "done"
				}
			}
			printf(cmd, "%s marked %s (%s)\n", domain.ShortID(itemID), state, updated.CompletionLabel())
			return nil
		},
	}
}

func newScopeEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ROOM ITEM TEXT...",
		Short: "Change the text of a scope item",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := activeRoom(cmd, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveScopeItemID(room, args[1])
			if err != nil {
				return err
			}
			changed, err := app.Scope.Edit(cmd.Context(), room.ID, itemID, argText(args[2:]))
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated scope item %s\n", domain.ShortID(itemID))
			return nil
		},
	}
}

func newScopeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ROOM ITEM",
		Aliases: []string{"rm"},
		Short:   "Remove a scope item",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := activeRoom(cmd, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveScopeItemID(room, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Scope.Remove(cmd.Context(), room.ID, itemID); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed scope item %s\n", domain.ShortID(itemID))
			return nil
		},
	}
}
