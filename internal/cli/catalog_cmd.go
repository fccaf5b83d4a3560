package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpetrov/lodestar/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveCatalogID resolves user input to a catalog ID, accepting an exact
// name (case-insensitive), an exact ID, or an unambiguous ID prefix.
func resolveCatalogID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("catalog ID is required")
	}

	catalogs, err := app.Catalogs.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range catalogs {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	for _, c := range catalogs {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range catalogs {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("catalog not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("catalog ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage unit catalogs",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogRemoveCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a catalog from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalogs.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported catalog %s [%s]: %d units, %d resources\n",
				result.Catalog.Name, formatter.TruncID(result.Catalog.ID),
				result.UnitCount, result.ResourceCount)
			return nil
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs, err := app.Catalogs.List(context.Background())
			if err != nil {
				return err
			}

			if len(catalogs) == 0 {
				fmt.Println("No catalogs found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCatalogList(catalogs))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	var showResources bool

	cmd := &cobra.Command{
		Use:   "show CATALOG",
		Short: "Show a catalog's units and resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			catalogID, err := resolveCatalogID(ctx, app, args[0])
			if err != nil {
				return err
			}

			c, err := app.Catalogs.GetByID(ctx, catalogID)
			if err != nil {
				return err
			}
			units, err := app.Catalogs.ListUnits(ctx, catalogID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", formatter.Header(c.Name))
			fmt.Printf("%s\n", formatter.FormatUnitList(units))

			if showResources {
				resources, err := app.Catalogs.ListResources(ctx, catalogID)
				if err != nil {
					return err
				}
				fmt.Printf("\n%s\n", formatter.FormatResourceList(resources))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showResources, "resources", false, "Include the resource list")

	return cmd
}

func newCatalogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CATALOG",
		Short: "Delete a catalog and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			catalogID, err := resolveCatalogID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalogs.Delete(ctx, catalogID); err != nil {
				return err
			}
			fmt.Printf("Removed catalog %s\n", formatter.TruncID(catalogID))
			return nil
		},
	}
}
