package cli

import (
	"fmt"

	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every project to a JSON file",
		Long: "Write all projects and the active project to reimagine-YYYY-MM-DD.json in the\n" +
			"export directory (config export.dir, or --dir). Use --dir - to write to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dir == "-" {
				return app.Exchange.Export(ctx, cmd.OutOrStdout())
			}
			if dir == "" {
				var err error
				if dir, err = app.config().ExportDir(); err != nil {
					return err
				}
			}
			path, err := app.Exchange.ExportToDir(ctx, dir, app.now())
			if err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
			printf(cmd, "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory, or - for stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all projects with the contents of an export file",
		Long: "Replace all projects with those in FILE (- reads stdin). The active project\n" +
			"comes from the file when it names one. A file without projects is rejected\n" +
			"and nothing changes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var res *service.ImportResult
			var err error
			if args[0] == "-" {
				res, err = app.Exchange.Import(ctx, cmd.InOrStdin())
			} else {
				res, err = app.Exchange.ImportFile(ctx, args[0])
			}
			if res == nil {
				return err
			}
			if err := finish(cmd, err); err != nil {
				return err
			}
			printf(cmd, "Imported %d project(s)\n", res.ProjectCount)
			return nil
		},
	}
}
