package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dpetrov/lodestar/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryBadge returns a colored category label such as "◆ core".
func CategoryBadge(c domain.Category) string {
	switch c {
	case domain.CategoryFoundation:
		return StyleGreen.Render("◆ foundation")
	case domain.CategoryCore:
		return StyleBlue.Render("◆ core")
	case domain.CategoryAdvanced:
		return StylePurple.Render("◆ advanced")
	case domain.CategorySpecialized:
		return StyleYellow.Render("◆ specialized")
	default:
		return StyleDim.Render(string(c))
	}
}

// TypeBadge returns a colored resource type label.
func TypeBadge(t domain.ResourceType) string {
	switch t {
	case domain.ResourceBook:
		return StyleBlue.Render("book")
	case domain.ResourceVideo:
		return StylePurple.Render("video")
	case domain.ResourceCourse:
		return StyleGreen.Render("course")
	case domain.ResourceArticle:
		return StyleYellow.Render("article")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Cost formats a monetary amount, rendering zero as "free".
func Cost(amount float64) string {
	if amount == 0 {
		return StyleGreen.Render("free")
	}
	return StyleFg.Render(fmt.Sprintf("$%.2f", amount))
}

// Hours formats an effort amount in hours.
func Hours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}
