package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "timeline"},
		Short:   "Manage timeline tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var start, end, room string

	cmd := &cobra.Command{
		Use:   "add [NAME...]",
		Short: "Add a timeline task",
		Long:  "Add a timeline task. Dates are free text (YYYY-MM-DD recommended) and are not checked\nagainst each other.",
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

			name := argText(args)
			ok, err := promptIfBlank(app, &name, func() *huh.Form {
				return newForm(
					textInput("Task", "Demo kitchen", &name),
					textInput("Start", "2026-11-01", &start),
					textInput("End", "2026-11-07", &end),
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

			task, added, err := app.Timeline.AddTask(ctx, domain.TimelineTask{
				Name:   name,
				Start:  start,
				End:    end,
				RoomID: roomID,
			})
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !added {
				printf(cmd, "%s\n", nothingToAdd)
				return nil
			}
			printf(cmd, "Added task %s [%s]\n", task.Name, domain.ShortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().StringVar(&end, "end", "", "End date")
	cmd.Flags().StringVar(&room, "room", "", "Room name or ID (blank for all rooms)")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var name, start, end, room string

	cmd := &cobra.Command{
		Use:   "edit TASK",
		Short: "Edit a timeline task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveTaskID(p, args[0])
			if err != nil {
				return err
			}

			patch := domain.TaskPatch{
				Name:  changedString(cmd, "name", name),
				Start: changedString(cmd, "start", start),
				End:   changedString(cmd, "end", end),
			}
			if cmd.Flags().Changed("room") {
				roomID, err := resolveRoomRef(p, room)
				if err != nil {
					return err
				}
				patch.RoomID = &roomID
			}

			changed, err := app.Timeline.EditTask(ctx, id, patch)
			if err := finish(cmd, err); err != nil {
				return err
			}
			if !changed {
				printf(cmd, "No changes.\n")
				return nil
			}
			printf(cmd, "Updated task %s\n", domain.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().StringVar(&end, "end", "", "End date")
	cmd.Flags().StringVar(&room, "room", "", "Room name or ID (blank for all rooms)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove TASK",
		Aliases: []string{"rm"},
		Short:   "Remove a timeline task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}
			id, err := resolveTaskID(p, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Timeline.RemoveTask(ctx, id); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "Removed task %s\n", domain.ShortID(id))
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List timeline tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "%s", formatter.FormatTimeline(p, app.now()))
			return nil
		},
	}
}
