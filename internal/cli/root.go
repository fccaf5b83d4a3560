package cli

import (
	"github.com/dpetrov/lodestar/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalogs service.CatalogService
	Plans    service.PlanService
	Roadmaps service.RoadmapService

	// Interactive reports whether stdout is a terminal; wizards and the
	// roadmap browser are only offered when it is.
	Interactive bool
}

// NewRootCmd creates the top-level "lodestar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lodestar",
		Short: "Learning-path roadmap planner",
	}

	root.AddCommand(
		newCatalogCmd(app),
		newPlanCmd(app),
		newRoadmapCmd(app),
	)

	return root
}
