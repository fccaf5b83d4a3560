package domain

import (
	"fmt"
	"time"
)

// PeriodEntry pairs a scheduled unit with the resources picked for it.
// Entries may legitimately carry zero resources.
type PeriodEntry struct {
	Unit      LearningUnit `json:"unit"`
	Resources []Resource   `json:"resources"`
}

// Milestone is a labeled checkpoint inserted at a regular cadence.
type Milestone struct {
	Label       string `json:"label"`
	PeriodIndex int    `json:"period_index"`
	UnitsDone   int    `json:"units_done"`
}

// Period is one time-boxed bucket (week or semester) of the roadmap.
type Period struct {
	Index        int           `json:"index"` // 1-based
	Entries      []PeriodEntry `json:"entries"`
	TotalCost    float64       `json:"total_cost"`
	OverCapacity bool          `json:"over_capacity,omitempty"`
	Milestones   []Milestone   `json:"milestones,omitempty"`
}

// Roadmap is the planning output: an ordered sequence of periods plus
// summary statistics. It is plain serializable data, computed once per
// request and never mutated in place.
type Roadmap struct {
	ID           string      `json:"id"`
	CatalogID    string      `json:"catalog_id"`
	GoalName     string      `json:"goal_name"`
	Granularity  Granularity `json:"granularity"`
	Periods      []Period    `json:"periods"`
	TotalPeriods int         `json:"total_periods"`
	TotalUnits   int         `json:"total_units"`
	TotalCost    float64     `json:"total_cost"`
	CreatedAt    time.Time   `json:"created_at"`
}

// PeriodOf returns the 1-based period index holding unitID, or 0 if absent.
func (r *Roadmap) PeriodOf(unitID string) int {
	for _, p := range r.Periods {
		for _, e := range p.Entries {
			if e.Unit.ID == unitID {
				return p.Index
			}
		}
	}
	return 0
}

// UnitIDs returns every scheduled unit ID in roadmap order.
func (r *Roadmap) UnitIDs() []string {
	var ids []string
	for _, p := range r.Periods {
		for _, e := range p.Entries {
			ids = append(ids, e.Unit.ID)
		}
	}
	return ids
}

// CheckConsistency verifies the roadmap invariants: every unit appears
// exactly once, and every prerequisite that is itself scheduled lands in a
// strictly earlier period. It is the assembler's final oracle; a failure
// here means a planner bug, not bad user input.
func (r *Roadmap) CheckConsistency() error {
	seen := make(map[string]int) // unit ID -> period index
	for _, p := range r.Periods {
		for _, e := range p.Entries {
			if prev, dup := seen[e.Unit.ID]; dup {
				return fmt.Errorf("unit %q scheduled twice (periods %d and %d)", e.Unit.ID, prev, p.Index)
			}
			seen[e.Unit.ID] = p.Index
		}
	}
	for _, p := range r.Periods {
		for _, e := range p.Entries {
			for _, prereq := range e.Unit.Prerequisites {
				prereqPeriod, scheduled := seen[prereq]
				if !scheduled {
					continue // externally satisfied
				}
				if prereqPeriod >= p.Index {
					return fmt.Errorf("unit %q in period %d but prerequisite %q in period %d",
						e.Unit.ID, p.Index, prereq, prereqPeriod)
				}
			}
		}
	}
	return nil
}
