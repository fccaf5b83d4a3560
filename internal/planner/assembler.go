package planner

import (
	"fmt"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
)

// DefaultMilestoneEvery is the checkpoint cadence in scheduled units.
const DefaultMilestoneEvery = 4

// Assemble wraps scheduled periods into the final Roadmap: it attaches a
// milestone after every milestoneEvery scheduled units, a goal-completion
// milestone when the last required unit lands, and summary statistics. As a
// final oracle it re-validates the prerequisite ordering invariant; a
// violation means a planner bug upstream and surfaces as an internal error,
// never as a silently repaired roadmap.
func Assemble(periods []domain.Period, goal *domain.Goal, milestoneEvery int) (*domain.Roadmap, error) {
	if milestoneEvery <= 0 {
		milestoneEvery = DefaultMilestoneEvery
	}

	roadmap := &domain.Roadmap{
		Periods:      periods,
		TotalPeriods: len(periods),
	}
	if goal != nil {
		roadmap.GoalName = goal.Name
	}

	goalRemaining := make(map[string]bool)
	if goal != nil {
		for _, id := range goal.UnitIDs {
			goalRemaining[id] = true
		}
	}

	unitsDone := 0
	checkpoint := 0
	for i := range roadmap.Periods {
		p := &roadmap.Periods[i]
		for _, e := range p.Entries {
			unitsDone++
			roadmap.TotalCost += e.Unit.Cost
			delete(goalRemaining, e.Unit.ID)

			if unitsDone%milestoneEvery == 0 {
				checkpoint++
				p.Milestones = append(p.Milestones, domain.Milestone{
					Label:       fmt.Sprintf("Checkpoint %d: %d units complete", checkpoint, unitsDone),
					PeriodIndex: p.Index,
					UnitsDone:   unitsDone,
				})
			}
			if goal != nil && len(goal.UnitIDs) > 0 && len(goalRemaining) == 0 {
				p.Milestones = append(p.Milestones, domain.Milestone{
					Label:       fmt.Sprintf("Goal reached: %s", goal.Name),
					PeriodIndex: p.Index,
					UnitsDone:   unitsDone,
				})
				goalRemaining = nil
				goal = nil
			}
		}
	}
	roadmap.TotalUnits = unitsDone

	if err := roadmap.CheckConsistency(); err != nil {
		return nil, &app.PlanError{
			Code:    app.ErrInternal,
			Message: fmt.Sprintf("roadmap failed consistency check: %v", err),
		}
	}
	return roadmap, nil
}
