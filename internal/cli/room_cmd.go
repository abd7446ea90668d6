package cli

import (
	"strings"

	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRoomCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "room",
		Aliases: []string{"rooms"},
		Short:   "Manage rooms of the active project",
	}

	cmd.AddCommand(
		newRoomAddCmd(app),
		newRoomRenameCmd(app),
		newRoomRemoveCmd(app),
		newRoomListCmd(app),
		newRoomPresetsCmd(app),
	)

	return cmd
}

func newRoomAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Add a room (any name; see 'room presets' for suggestions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := argText(args)
			ok, err := promptIfBlank(app, &name, func() *huh.Form {
				return newForm(
					huh.NewInput().
						Title("Room").
						Placeholder("Kitchen").
						Suggestions(domain.PresetRooms).
						Value(&name),
				)
			})
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}

			room, added, err := app.Rooms.Add(cmd.Context(), name)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added room %s [%s]\n", room.Name, domain.ShortID(room.ID))
			return nil
		},
	}
}

func newRoomRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ROOM NAME...",
		Short: "Rename a room",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			roomID, err := resolveRoomID(p, args[0])
			if err != nil {
				return err
			}
			changed, err := app.Rooms.Rename(ctx, roomID, argText(args[1:]))
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Renamed room to %s\n", strings.TrimSpace(argText(args[1:])))
			return nil
		},
	}
}

func newRoomRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ROOM",
		Aliases: []string{"rm"},
		Short:   "Remove a room and its scope checklist",
		Long: "Remove a room and its scope checklist. Budget items, tasks, materials and images\n" +
			"that point at the room are never deleted; planner.room_delete_policy decides\n" +
			"whether they keep the stale reference (keep) or become unassigned (clear).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			roomID, err := resolveRoomID(p, args[0])
			if err != nil {
				return err
			}
			name := p.RoomName(roomID, roomID)
			if _, err := app.Rooms.Remove(ctx, roomID); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed room %s\n", name)
			return nil
		},
	}
}

func newRoomListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show rooms and scope checklists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatRooms(p))
			return nil
		},
	}
}

func newRoomPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List suggested room names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			existing := map[string]bool{}
			if p, err := app.Projects.Active(cmd.Context()); err == nil {
				for _, r := range p.Rooms {
					existing[strings.ToLower(r.Name)] = true
				}
			}
			for _, name := range domain.PresetRooms {
				if existing[strings.ToLower(name)] {
					printf(cmd, "%s %s\n", formatter.StyleGreen.Render("✔"), formatter.Dim(name))
					continue
				}
				printf(cmd, "  %s\n", name)
			}
			return nil
		},
	}
}
