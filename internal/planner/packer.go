package planner

import (
	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
)

// BuildPeriods packs the resolved unit order into capacity-bounded periods.
// Each pass scans the remaining units in order and greedily adds every unit
// whose selected prerequisites were completed in an earlier period, while
// the period's total cost stays within capacity. A unit whose cost alone
// exceeds capacity would stall an empty period forever; it is force-placed
// alone, the period is flagged OverCapacity, and a warning is emitted. That
// is the only permitted capacity violation.
//
// Greedy, not optimal: minimizing the period count is a non-goal,
// prerequisite correctness and predictability are the contract.
func BuildPeriods(order []domain.LearningUnit, constraints domain.UserConstraints) ([]domain.Period, []app.PlanWarning) {
	capacity := constraints.WeeklyCapacity

	inOrder := make(map[string]bool, len(order))
	for _, u := range order {
		inOrder[u.ID] = true
	}

	completed := make(map[string]bool, len(order))
	remaining := order

	var periods []domain.Period
	var warnings []app.PlanWarning

	for len(remaining) > 0 {
		period := domain.Period{Index: len(periods) + 1}
		var deferred []domain.LearningUnit

		for _, u := range remaining {
			if !eligible(u, completed, inOrder) || period.TotalCost+u.Cost > capacity {
				deferred = append(deferred, u)
				continue
			}
			period.Entries = append(period.Entries, domain.PeriodEntry{Unit: u})
			period.TotalCost += u.Cost
		}

		if len(period.Entries) == 0 {
			// Capacity deadlock. The order is topologically valid, so the
			// first remaining unit has all its selected prerequisites
			// completed; only its cost can be the blocker.
			u := remaining[0]
			period.Entries = append(period.Entries, domain.PeriodEntry{Unit: u})
			period.TotalCost = u.Cost
			period.OverCapacity = true
			warnings = append(warnings, app.NewOverCapacityWarning(u.ID, period.Index, u.Cost, capacity))
			deferred = remaining[1:]
		}

		for _, e := range period.Entries {
			completed[e.Unit.ID] = true
		}
		periods = append(periods, period)
		remaining = deferred
	}

	return periods, warnings
}

// eligible reports whether every prerequisite of u is either completed in an
// earlier period or absent from the order entirely (externally satisfied).
func eligible(u domain.LearningUnit, completed, inOrder map[string]bool) bool {
	for _, p := range u.Prerequisites {
		if inOrder[p] && !completed[p] {
			return false
		}
	}
	return true
}
