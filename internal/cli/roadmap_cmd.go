package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpetrov/lodestar/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveRoadmapID resolves user input to a roadmap ID, accepting an exact
// ID or an unambiguous ID prefix.
func resolveRoadmapID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("roadmap ID is required")
	}

	roadmaps, err := app.Roadmaps.List(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range roadmaps {
		if r.ID == input {
			return r.ID, nil
		}
	}

	var matches []string
	for _, r := range roadmaps {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("roadmap not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("roadmap ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Browse saved roadmaps",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapShowCmd(app),
		newRoadmapBrowseCmd(app),
		newRoadmapRemoveCmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved roadmaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmaps, err := app.Roadmaps.List(context.Background())
			if err != nil {
				return err
			}

			if len(roadmaps) == 0 {
				fmt.Println("No roadmaps saved yet. Run 'lodestar plan --save' to create one.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatRoadmapList(roadmaps))
			return nil
		},
	}
}

func newRoadmapShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ROADMAP",
		Short: "Show a saved roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roadmapID, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Roadmaps.GetByID(ctx, roadmapID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRoadmap(r))
			return nil
		},
	}
}

func newRoadmapBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse roadmaps interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("browse requires a terminal; use 'roadmap show' instead")
			}
			return runRoadmapBrowser(context.Background(), app)
		},
	}
}

func newRoadmapRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ROADMAP",
		Short: "Delete a saved roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roadmapID, err := resolveRoadmapID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Roadmaps.Delete(ctx, roadmapID); err != nil {
				return err
			}
			fmt.Printf("Removed roadmap %s\n", formatter.TruncID(roadmapID))
			return nil
		},
	}
}
