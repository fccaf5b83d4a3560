package formatter

import (
	"fmt"
	"strings"

	"github.com/dpetrov/lodestar/internal/contract"
	"github.com/dpetrov/lodestar/internal/domain"
)

// FormatRoadmap renders a full roadmap: one section per period with its
// scheduled units, attached resources, and milestones, followed by a summary
// line.
func FormatRoadmap(r *domain.Roadmap) string {
	var b strings.Builder

	title := "Roadmap"
	if r.GoalName != "" {
		title = fmt.Sprintf("Roadmap — goal: %s", r.GoalName)
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	for _, p := range r.Periods {
		b.WriteString(formatPeriod(p, r.Granularity))
		b.WriteString("\n")
	}

	b.WriteString(Dim(fmt.Sprintf("%d units across %d %ss, total effort %s",
		r.TotalUnits, r.TotalPeriods, granularityLabel(r.Granularity), Hours(r.TotalCost))))
	b.WriteString("\n")

	return b.String()
}

func formatPeriod(p domain.Period, g domain.Granularity) string {
	var b strings.Builder

	name := granularityLabel(g)
	label := fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], p.Index)
	header := StyleBold.Render(label) + Dim(fmt.Sprintf("  (%s)", Hours(p.TotalCost)))
	if p.OverCapacity {
		header += "  " + StyleYellow.Render("⚠ over capacity")
	}
	b.WriteString(header)
	b.WriteString("\n")

	for _, e := range p.Entries {
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			StyleHeader.Render("•"), Bold(e.Unit.Name), CategoryBadge(e.Unit.Category), Dim(Hours(e.Unit.Cost))))
		for _, res := range e.Resources {
			b.WriteString(fmt.Sprintf("      %s %s  %s  %s\n",
				Dim("↳"), StyleFg.Render(res.Title), TypeBadge(res.Type), Cost(res.Cost)))
		}
	}

	for _, m := range p.Milestones {
		b.WriteString("  " + StyleGreen.Render("★ "+m.Label) + "\n")
	}

	return b.String()
}

func granularityLabel(g domain.Granularity) string {
	if g == domain.GranularitySemester {
		return "semester"
	}
	return "week"
}

// FormatRoadmapList renders a table of saved roadmaps.
func FormatRoadmapList(roadmaps []*domain.Roadmap) string {
	headers := []string{"ID", "GOAL", "UNITS", "PERIODS", "CREATED"}
	rows := make([][]string, 0, len(roadmaps))

	for _, r := range roadmaps {
		goal := r.GoalName
		if goal == "" {
			goal = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			goal,
			fmt.Sprintf("%d", r.TotalUnits),
			fmt.Sprintf("%d", r.TotalPeriods),
			r.CreatedAt.Format("Jan 2, 2006"),
		})
	}

	return RenderBox("Roadmaps", RenderTable(headers, rows))
}

// FormatWarnings renders planning warnings, one per line.
func FormatWarnings(warnings []contract.PlanWarning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("⚠ ") + StyleFg.Render(w.Message) + "\n")
	}
	return b.String()
}

// FormatPicks renders the per-unit resource picks with scoring reasons.
func FormatPicks(picks []contract.ResourcePick) string {
	var b strings.Builder
	b.WriteString(Header("Resource picks"))
	b.WriteString("\n\n")

	lastUnit := ""
	for _, p := range picks {
		if p.UnitID != lastUnit {
			b.WriteString(Bold(p.UnitID) + "\n")
			lastUnit = p.UnitID
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s  score %.1f\n",
			StyleFg.Render(p.Resource.Title), TypeBadge(p.Resource.Type), Cost(p.Resource.Cost), p.Score))
		for _, reason := range p.Reasons {
			sign := "+"
			if reason.WeightDelta < 0 {
				sign = ""
			}
			b.WriteString(Dim(fmt.Sprintf("      %s%.0f %s\n", sign, reason.WeightDelta, reason.Message)))
		}
	}
	return b.String()
}
