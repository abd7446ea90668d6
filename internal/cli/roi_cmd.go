package cli

import (
	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/spf13/cobra"
)

func newROICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Estimate return on investment",
	}

	cmd.AddCommand(
		newROISetCmd(app),
		newROIShowCmd(app),
	)

	return cmd
}

func newROISetCmd(app *App) *cobra.Command {
	var value, cost string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the projected value increase and total project cost",
		Long:  "Save both ROI figures together. A figure that is not given keeps its current value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.Active(ctx)
			if err != nil {
				return err
			}

			roi := p.ROI
			if v := changedAmount(cmd, "value", value, false); v != nil {
				roi.EstValueIncrease = *v
			}
			if c := changedAmount(cmd, "cost", cost, false); c != nil {
				roi.ProjectCost = *c
			}

			if _, err := app.ROI.Set(ctx, roi); err != nil {
				if err := finish(cmd, err); err != nil {
					return err
				}
			}
			printf(cmd, "%s", formatter.FormatROI(roi))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Projected value increase")
	cmd.Flags().StringVar(&cost, "cost", "", "Total project cost")

	return cmd
}

func newROIShowCmd(app *App) *cobra.Command {
	var fromBudget bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show net gain/loss and ROI percent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Active(cmd.Context())
			if err != nil {
				return err
			}
			roi := p.ROI
			if fromBudget {
				roi = domain.ROI{EstValueIncrease: roi.EstValueIncrease, ProjectCost: p.Budget.Summary().Total}
			}
			printf(cmd, "%s", formatter.FormatROI(roi))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromBudget, "from-budget", false, "Use the budget total as the project cost (not saved)")

	return cmd
}
