package formatter

import (
	"fmt"
	"strings"

	"github.com/dpetrov/lodestar/internal/domain"
)

// FormatCatalogList renders a table of catalogs.
func FormatCatalogList(catalogs []*domain.Catalog) string {
	headers := []string{"ID", "NAME", "CREATED"}
	rows := make([][]string, 0, len(catalogs))

	for _, c := range catalogs {
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			c.CreatedAt.Format("Jan 2, 2006"),
		})
	}

	return RenderBox("Catalogs", RenderTable(headers, rows))
}

// FormatUnitList renders a table of learning units with their prerequisites.
func FormatUnitList(units []domain.LearningUnit) string {
	headers := []string{"ID", "NAME", "CATEGORY", "EFFORT", "PREREQS"}
	rows := make([][]string, 0, len(units))

	for _, u := range units {
		prereqs := Dim("--")
		if len(u.Prerequisites) > 0 {
			prereqs = StyleFg.Render(strings.Join(u.Prerequisites, ", "))
		}
		rows = append(rows, []string{
			u.ID,
			Bold(u.Name),
			CategoryBadge(u.Category),
			Hours(u.Cost),
			prereqs,
		})
	}

	return RenderTable(headers, rows)
}

// FormatResourceList renders a table of learning resources.
func FormatResourceList(resources []domain.Resource) string {
	headers := []string{"ID", "TITLE", "TYPE", "COVERS", "COST", "QUALITY"}
	rows := make([][]string, 0, len(resources))

	for _, r := range resources {
		rows = append(rows, []string{
			r.ID,
			Bold(r.Title),
			TypeBadge(r.Type),
			StyleFg.Render(strings.Join(r.SkillRefs, ", ")),
			Cost(r.Cost),
			fmt.Sprintf("%.1f", r.QualityScore),
		})
	}

	return RenderTable(headers, rows)
}
