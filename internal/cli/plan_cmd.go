package cli

import (
	"context"
	"fmt"

	"github.com/dpetrov/lodestar/internal/cli/formatter"
	"github.com/dpetrov/lodestar/internal/contract"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// constraintFlags holds the flag-backed planning constraints shared between
// the plan command and the wizard prefill.
type constraintFlags struct {
	capacity    float64
	budget      float64
	format      string
	granularity string
}

func addConstraintFlags(fs *pflag.FlagSet, c *constraintFlags) {
	fs.Float64Var(&c.capacity, "capacity", 8, "Hours available per period")
	fs.Float64Var(&c.budget, "budget", 0, "Maximum resource spend")
	fs.StringVar(&c.format, "format", "", "Preferred resource format tag (e.g. video)")
	fs.StringVar(&c.granularity, "granularity", "week", "Period granularity: week or semester")
}

func (c *constraintFlags) toDomain() domain.UserConstraints {
	return domain.UserConstraints{
		WeeklyCapacity:    c.capacity,
		Budget:            c.budget,
		FormatPreference:  c.format,
		PeriodGranularity: domain.Granularity(c.granularity),
	}
}

func newPlanCmd(app *App) *cobra.Command {
	var (
		catalogRef     string
		units          []string
		goalName       string
		goalUnits      []string
		constraints    constraintFlags
		topResources   int
		milestoneEvery int
		save           bool
		explain        bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a learning roadmap from a catalog",
		Long: `Build a learning roadmap: resolve prerequisites into a study order,
pick the best resources for each unit, and pack units into periods that fit
your available time. Run without --units in a terminal for the interactive
wizard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No units on the command line: fall back to the wizard when
			// attached to a terminal.
			if len(units) == 0 && len(goalUnits) == 0 {
				if !app.Interactive {
					return fmt.Errorf("--units is required in non-interactive mode")
				}
				input, err := runPlanWizard(ctx, app, catalogRef, constraints)
				if err != nil {
					return err
				}
				catalogRef = input.catalogID
				units = input.units
				goalName = input.goalName
				goalUnits = input.goalUnits
				constraints = input.constraints
				save = input.save
			}

			catalogID, err := resolveCatalogID(ctx, app, catalogRef)
			if err != nil {
				return err
			}

			req := contract.NewPlanRequest(catalogID, units)
			req.GoalName = goalName
			req.GoalUnitIDs = goalUnits
			req.Constraints = constraints.toDomain()
			req.TopResources = topResources
			req.MilestoneEvery = milestoneEvery
			req.Save = save

			resp, err := app.Plans.Plan(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRoadmap(resp.Roadmap))
			if w := formatter.FormatWarnings(resp.Warnings); w != "" {
				fmt.Printf("%s\n", w)
			}
			if explain {
				fmt.Printf("%s\n", formatter.FormatPicks(resp.Picks))
			}
			if save {
				fmt.Printf("Saved roadmap %s\n", formatter.TruncID(resp.Roadmap.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogRef, "catalog", "", "Catalog name, ID, or ID prefix")
	cmd.Flags().StringSliceVar(&units, "units", nil, "Unit IDs to include in the plan")
	cmd.Flags().StringVar(&goalName, "goal", "", "Goal name for the milestone label")
	cmd.Flags().StringSliceVar(&goalUnits, "goal-units", nil, "Unit IDs the goal requires")
	addConstraintFlags(cmd.Flags(), &constraints)
	cmd.Flags().IntVar(&topResources, "top", 3, "Resource picks per unit")
	cmd.Flags().IntVar(&milestoneEvery, "milestone-every", 4, "Units per checkpoint milestone")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the roadmap")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show resource scoring reasons")

	return cmd
}
