package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Manage the mood board",
	}

	cmd.AddCommand(
		newMoodAddCmd(app),
		newMoodRemoveCmd(app),
		newMoodListCmd(app),
	)

	return cmd
}

func newMoodAddCmd(app *App) *cobra.Command {
	var caption, room string

	cmd := &cobra.Command{
		Use:   "add [URL]",
		Short: "Add an image by URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			roomID, err := resolveRoomRef(p, room)
			if err != nil {
				return err
			}

			url := argText(args)
			ok, err := promptIfBlank(app, &url, func() *huh.Form {
				return newForm(
					textInput("Image URL", "https://", &url),
					textInput("Caption", "", &caption),
					roomSelect(p, domain.AllRoomsLabel, &roomID),
				)
			})
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}

			img, added, err := app.Mood.Add(ctx, domain.MoodImage{URL: url, Caption: caption, RoomID: roomID})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added image [%s]\n", domain.ShortID(img.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&caption, "caption", "", "Caption")
	cmd.Flags().StringVar(&room, "room", "", "Room name or ID")

	return cmd
}

func newMoodRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove IMAGE",
		Aliases: []string{"rm"},
		Short:   "Remove an image",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveMoodImageID(p, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Mood.Remove(ctx, id); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed image %s\n", domain.ShortID(id))
			return nil
		},
	}
}

func newMoodListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List mood board images",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatMood(p))
			return nil
		},
	}
}
