package planner

import (
	"testing"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduled(t *testing.T, capacity float64, units ...domain.LearningUnit) []domain.Period {
	t.Helper()
	periods, _ := BuildPeriods(units, domain.UserConstraints{WeeklyCapacity: capacity})
	return periods
}

func TestAssemble_MilestoneCadence(t *testing.T) {
	periods := scheduled(t, 10,
		unit("a", domain.CategoryFoundation, 2),
		unit("b", domain.CategoryFoundation, 2),
		unit("c", domain.CategoryFoundation, 2),
		unit("d", domain.CategoryFoundation, 2),
		unit("e", domain.CategoryFoundation, 2),
	)

	roadmap, err := Assemble(periods, nil, 2)
	require.NoError(t, err)

	var milestones []domain.Milestone
	for _, p := range roadmap.Periods {
		milestones = append(milestones, p.Milestones...)
	}
	require.Len(t, milestones, 2, "5 units at cadence 2 -> checkpoints after units 2 and 4")
	assert.Equal(t, 2, milestones[0].UnitsDone)
	assert.Equal(t, 4, milestones[1].UnitsDone)
	assert.Contains(t, milestones[0].Label, "Checkpoint 1")
}

func TestAssemble_DefaultCadence(t *testing.T) {
	var units []domain.LearningUnit
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		units = append(units, unit(id, domain.CategoryFoundation, 1))
	}
	periods := scheduled(t, 100, units...)

	roadmap, err := Assemble(periods, nil, 0)
	require.NoError(t, err)

	total := 0
	for _, p := range roadmap.Periods {
		total += len(p.Milestones)
	}
	assert.Equal(t, 2, total, "8 units at default cadence 4 -> 2 checkpoints")
}

func TestAssemble_GoalCompletionMilestone(t *testing.T) {
	periods := scheduled(t, 4,
		unit("a", domain.CategoryFoundation, 4),
		unit("b", domain.CategoryCore, 4, "a"),
		unit("extra", domain.CategoryCore, 4),
	)
	goal := &domain.Goal{Name: "data-analyst", UnitIDs: []string{"a", "b"}}

	roadmap, err := Assemble(periods, goal, 100)
	require.NoError(t, err)
	assert.Equal(t, "data-analyst", roadmap.GoalName)

	goalPeriod := 0
	for _, p := range roadmap.Periods {
		for _, m := range p.Milestones {
			if m.Label == "Goal reached: data-analyst" {
				goalPeriod = p.Index
			}
		}
	}
	require.NotZero(t, goalPeriod, "goal milestone must be attached")
	assert.Equal(t, roadmap.PeriodOf("b"), goalPeriod)
}

func TestAssemble_SummaryStatistics(t *testing.T) {
	periods := scheduled(t, 6,
		unit("a", domain.CategoryFoundation, 4),
		unit("b", domain.CategoryCore, 5, "a"),
		unit("c", domain.CategoryCore, 2, "a"),
	)

	roadmap, err := Assemble(periods, nil, 4)
	require.NoError(t, err)

	assert.Equal(t, len(periods), roadmap.TotalPeriods)
	assert.Equal(t, 3, roadmap.TotalUnits)
	assert.InDelta(t, 11.0, roadmap.TotalCost, 0.001)
}

func TestAssemble_InvalidOrderingIsInternalError(t *testing.T) {
	// Hand-built periods violating prerequisite-before-dependent: the
	// assembler must refuse, never silently repair.
	broken := []domain.Period{
		{Index: 1, Entries: []domain.PeriodEntry{{Unit: unit("b", domain.CategoryCore, 2, "a")}}, TotalCost: 2},
		{Index: 2, Entries: []domain.PeriodEntry{{Unit: unit("a", domain.CategoryFoundation, 2)}}, TotalCost: 2},
	}

	_, err := Assemble(broken, nil, 4)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.ErrInternal, planErr.Code)
}

func TestAssemble_EmptyPeriods(t *testing.T) {
	roadmap, err := Assemble(nil, nil, 4)
	require.NoError(t, err)
	assert.Zero(t, roadmap.TotalPeriods)
	assert.Zero(t, roadmap.TotalUnits)
}

func TestEngine_EndToEndScenario(t *testing.T) {
	// spec scenario: A(4), B(4, prereq A), C(4, prereq A), capacity 4.
	catalog := []domain.LearningUnit{
		unit("A", domain.CategoryFoundation, 4),
		unit("B", domain.CategoryCore, 4, "A"),
		unit("C", domain.CategoryCore, 4, "A"),
	}

	order, err := ResolveOrder(domain.SelectionSet{"C", "B", "A"}, nil, catalog)
	require.NoError(t, err)

	periods, warnings := BuildPeriods(order, domain.UserConstraints{WeeklyCapacity: 4})
	require.Empty(t, warnings)

	roadmap, err := Assemble(periods, nil, 4)
	require.NoError(t, err)

	require.Equal(t, 3, roadmap.TotalPeriods)
	assert.Equal(t, []string{"A", "B", "C"}, roadmap.UnitIDs())
	assert.Equal(t, 1, roadmap.PeriodOf("A"))
	assert.Equal(t, 2, roadmap.PeriodOf("B"))
	assert.Equal(t, 3, roadmap.PeriodOf("C"))
}
