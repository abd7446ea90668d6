package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/reimagine/internal/config"
	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Rooms     service.RoomService
	Scope     service.ScopeService
	Budget    service.BudgetService
	Timeline  service.TimelineService
	Materials service.MaterialService
	Vendors   service.VendorService
	Mood      service.MoodService
	ROI       service.ROIService
	Exchange  service.ExchangeService

	Config *config.Config

	// ConfigErr is the error from loading the config file, if any. Commands
	// that touch state fail with it; config subcommands still run so the file
	// can be inspected or rewritten.
	ConfigErr error

	// Connect opens the database at dbPath and fills in the services. It runs
	// once before any command that touches state. Tests leave it nil and wire
	// the services directly.
	Connect func(ctx context.Context, dbPath string) error

	// IsInteractive reports whether stdin is a terminal. Add commands only
	// prompt with a form when it returns true.
	IsInteractive func() bool

	// RunForm runs a huh form. Defaults to (*huh.Form).Run.
	RunForm func(f *huh.Form) error

	// Now is the clock used for export filenames and relative dates.
	Now func() time.Time

	dbPath string
}

// Bind points every service at store.
func (a *App) Bind(store *service.Store) {
	a.Projects = service.NewProjectService(store)
	a.Rooms = service.NewRoomService(store)
	a.Scope = service.NewScopeService(store)
	a.Budget = service.NewBudgetService(store)
	a.Timeline = service.NewTimelineService(store)
	a.Materials = service.NewMaterialService(store)
	a.Vendors = service.NewVendorService(store)
	a.Mood = service.NewMoodService(store)
	a.ROI = service.NewROIService(store)
	a.Exchange = service.NewExchangeService(store)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		cfg := config.DefaultConfig()
		a.Config = &cfg
	}
	return a.Config
}

// NewRootCmd creates the top-level "reimagine" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "reimagine",
		Short:         "Home renovation planner",
		Long:          "Plan renovation projects: rooms and scope, budget, timeline, materials, vendors, mood board and ROI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigErr != nil {
				return app.ConfigErr
			}
			if app.Connect == nil {
				return nil
			}
			path := app.dbPath
			if path == "" {
				var err error
				if path, err = app.config().DBPath(); err != nil {
					return err
				}
			}
			return app.Connect(cmd.Context(), path)
		},
	}

	root.PersistentFlags().StringVar(&app.dbPath, "db", "", "Database path (overrides config and "+config.EnvDBPath+")")

	root.AddCommand(
		newProjectCmd(app),
		newRoomCmd(app),
		newScopeCmd(app),
		newBudgetCmd(app),
		newTaskCmd(app),
		newMaterialCmd(app),
		newVendorCmd(app),
		newMoodCmd(app),
		newROICmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
		newConfigCmd(app),
	)
	skipWithoutActiveProject(root)

	return root
}

// skipWithoutActiveProject makes every command in the tree a no-op when it
// needs the active project and none is set: nothing changes, a hint goes to
// stderr and the exit status is zero.
func skipWithoutActiveProject(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		skipWithoutActiveProject(sub)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if errors.Is(err, service.ErrNoActiveProject) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Nothing changed: %v\n", err)
			return nil
		}
		return err
	}
}

// finish turns a SaveError into a warning on stderr. The change already
// applied in memory, so the command itself succeeded.
func finish(cmd *cobra.Command, err error) error {
	var saveErr *service.SaveError
	if errors.As(err, &saveErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", saveErr)
		return nil
	}
	return err
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
