package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/reimagine/internal/cli"
	"github.com/alexanderramin/reimagine/internal/config"
	"github.com/alexanderramin/reimagine/internal/db"
	"github.com/alexanderramin/reimagine/internal/repository"
	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A broken config file only fails commands that need it; the config
	// subcommands stay usable to repair it.
	cfg, cfgErr := config.Load()
	app := &cli.App{Config: &cfg}
	if cfgErr != nil {
		app.ConfigErr = fmt.Errorf("loading config: %w", cfgErr)
	}

	// Detect interactive terminal so add commands can fall back to forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The database opens lazily so config subcommands work without one.
	var database *sql.DB
	app.Connect = func(ctx context.Context, dbPath string) error {
		policy, err := cfg.RoomDeletePolicy()
		if err != nil {
			return err
		}
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}

		opened, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		database = opened

		opts := []service.StoreOption{service.WithRoomDeletePolicy(policy)}
		if cfg.Log.UseCases {
			opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr, level)))
		}
		store := service.NewStore(repository.NewSQLiteStateRepo(db.NewSQLiteUnitOfWork(database)), opts...)
		if err := store.Load(ctx); err != nil {
			return fmt.Errorf("loading state: %w", err)
		}
		app.Bind(store)
		return nil
	}
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}
