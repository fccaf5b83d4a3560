package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dpetrov/lodestar/internal/cli/formatter"
	"github.com/dpetrov/lodestar/internal/domain"
)

// lodestarHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func lodestarHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planWizardInput is everything the interactive wizard collects.
type planWizardInput struct {
	catalogID   string
	units       []string
	goalName    string
	goalUnits   []string
	constraints constraintFlags
	save        bool
}

// runPlanWizard walks the user through catalog choice, unit selection,
// constraints, and an optional goal. Flag values prefill the defaults.
func runPlanWizard(ctx context.Context, app *App, catalogRef string, prefill constraintFlags) (*planWizardInput, error) {
	input := &planWizardInput{constraints: prefill}

	catalogID := ""
	if catalogRef != "" {
		resolved, err := resolveCatalogID(ctx, app, catalogRef)
		if err != nil {
			return nil, err
		}
		catalogID = resolved
	} else {
		form, err := wizardSelectCatalog(ctx, app, &catalogID)
		if err != nil {
			return nil, err
		}
		if err := form.Run(); err != nil {
			return nil, err
		}
	}
	input.catalogID = catalogID

	units, err := app.Catalogs.ListUnits(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("catalog has no units to plan")
	}

	unitOptions := make([]huh.Option[string], 0, len(units))
	for _, u := range units {
		label := fmt.Sprintf("%s — %s (%s)", u.ID, u.Name, u.Category)
		unitOptions = append(unitOptions, huh.NewOption(label, u.ID))
	}

	capacityStr := strconv.FormatFloat(prefill.capacity, 'f', -1, 64)
	budgetStr := strconv.FormatFloat(prefill.budget, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which units do you want to learn?").
				Options(unitOptions...).
				Value(&input.units).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one unit")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours available per period").
				Value(&capacityStr).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Resource budget").
				Description("0 means free resources only").
				Value(&budgetStr).
				Validate(validateNonNegativeFloat),
			huh.NewSelect[string]().
				Title("Preferred format").
				Options(
					huh.NewOption("No preference", ""),
					huh.NewOption("Video", "video"),
					huh.NewOption("Text", "text"),
					huh.NewOption("Interactive", "interactive"),
				).
				Value(&input.constraints.format),
			huh.NewSelect[string]().
				Title("Plan by").
				Options(
					huh.NewOption("Week", string(domain.GranularityWeek)),
					huh.NewOption("Semester", string(domain.GranularitySemester)),
				).
				Value(&input.constraints.granularity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Goal name").
				Description("Optional; adds a milestone when the goal's units are done").
				Value(&input.goalName),
			huh.NewConfirm().
				Title("Save the roadmap?").
				Value(&input.save),
		),
	).WithTheme(lodestarHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	input.constraints.capacity, _ = strconv.ParseFloat(capacityStr, 64)
	input.constraints.budget, _ = strconv.ParseFloat(budgetStr, 64)

	if input.goalName != "" {
		goalForm := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Which units does the goal require?").
					Options(unitOptions...).
					Value(&input.goalUnits),
			),
		).WithTheme(lodestarHuhTheme()).WithShowHelp(false)
		if err := goalForm.Run(); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// wizardSelectCatalog creates a huh form to select a catalog from the list.
func wizardSelectCatalog(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	catalogs, err := app.Catalogs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no catalogs available; run 'lodestar catalog import' first")
	}

	options := make([]huh.Option[string], 0, len(catalogs))
	for _, c := range catalogs {
		label := fmt.Sprintf("%s — %s", c.Name, formatter.TruncID(c.ID))
		options = append(options, huh.NewOption(label, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which catalog?").
				Options(options...).
				Value(result),
		),
	).WithTheme(lodestarHuhTheme()).WithShowHelp(false), nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
