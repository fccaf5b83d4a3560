package planner

import (
	"sort"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
)

// visit marks for the DFS over the selected subgraph.
const (
	unvisited = iota
	inProgress
	done
)

// ResolveOrder computes a total order over the selected units in which every
// selected prerequisite precedes its dependent. Prerequisites that exist in
// the catalog but are not selected are treated as externally satisfied: they
// are neither ordered nor recursed into. A selected ID missing from the
// catalog fails with UnknownUnitError; a prerequisite cycle inside the
// selected subgraph fails with CycleError naming the cycle.
//
// Ties between unconstrained units break deterministically: goal-required
// units first, then category ascending, then ID.
func ResolveOrder(selection domain.SelectionSet, goal *domain.Goal, catalog []domain.LearningUnit) ([]domain.LearningUnit, error) {
	if len(selection) == 0 {
		return nil, &app.PlanError{
			Code:    app.ErrEmptySelection,
			Message: "selection must contain at least one unit",
		}
	}

	byID := indexUnits(catalog)
	selected := selection.ToSet()

	seen := make(map[string]bool, len(selection))
	roots := make([]string, 0, len(selection))
	for _, id := range selection {
		if _, ok := byID[id]; !ok {
			return nil, &app.UnknownUnitError{UnitID: id}
		}
		if !seen[id] { // dedupe repeated selection entries
			seen[id] = true
			roots = append(roots, id)
		}
	}

	w := &resolveWalker{
		byID:     byID,
		selected: selected,
		goal:     goal,
		marks:    make(map[string]int, len(roots)),
	}
	w.sortIDs(roots)

	for _, id := range roots {
		if err := w.visit(id); err != nil {
			return nil, err
		}
	}
	return w.order, nil
}

// resolveWalker carries DFS state for one resolution pass.
type resolveWalker struct {
	byID     map[string]domain.LearningUnit
	selected map[string]bool
	goal     *domain.Goal
	marks    map[string]int
	stack    []string
	order    []domain.LearningUnit
}

func (w *resolveWalker) visit(id string) error {
	switch w.marks[id] {
	case done:
		return nil
	case inProgress:
		return &app.CycleError{Cycle: w.cycleFrom(id)}
	}

	w.marks[id] = inProgress
	w.stack = append(w.stack, id)

	unit := w.byID[id]
	prereqs := make([]string, 0, len(unit.Prerequisites))
	for _, p := range unit.Prerequisites {
		// Unselected prerequisites are externally satisfied; their own
		// chains are deliberately not resolved.
		if w.selected[p] {
			prereqs = append(prereqs, p)
		}
	}
	w.sortIDs(prereqs)
	for _, p := range prereqs {
		if err := w.visit(p); err != nil {
			return err
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.marks[id] = done
	w.order = append(w.order, unit)
	return nil
}

// cycleFrom reconstructs the cycle path ending at the revisited unit.
func (w *resolveWalker) cycleFrom(id string) []string {
	start := 0
	for i, s := range w.stack {
		if s == id {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(w.stack)-start+1)
	cycle = append(cycle, w.stack[start:]...)
	return append(cycle, id)
}

// sortIDs orders unit IDs by the canonical tie-break rules:
// 1. Goal-required units first
// 2. Category: foundation < core < advanced < specialized
// 3. Unit ID: lexical ascending
func (w *resolveWalker) sortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := w.byID[ids[i]], w.byID[ids[j]]

		reqA, reqB := w.required(a.ID), w.required(b.ID)
		if reqA != reqB {
			return reqA
		}

		rankA, rankB := domain.CategoryRank(a.Category), domain.CategoryRank(b.Category)
		if rankA != rankB {
			return rankA < rankB
		}

		return a.ID < b.ID
	})
}

func (w *resolveWalker) required(id string) bool {
	return w.goal != nil && w.goal.Contains(id)
}

func indexUnits(catalog []domain.LearningUnit) map[string]domain.LearningUnit {
	byID := make(map[string]domain.LearningUnit, len(catalog))
	for _, u := range catalog {
		byID[u.ID] = u
	}
	return byID
}
