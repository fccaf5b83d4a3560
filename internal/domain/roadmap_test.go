package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoadmap() *Roadmap {
	return &Roadmap{
		ID: "rm-1",
		Periods: []Period{
			{Index: 1, Entries: []PeriodEntry{
				{Unit: LearningUnit{ID: "a", Name: "A", Cost: 4, Category: CategoryFoundation}},
			}, TotalCost: 4},
			{Index: 2, Entries: []PeriodEntry{
				{Unit: LearningUnit{ID: "b", Name: "B", Cost: 4, Category: CategoryCore, Prerequisites: []string{"a"}}},
			}, TotalCost: 4},
		},
	}
}

func TestRoadmapPeriodOf(t *testing.T) {
	r := testRoadmap()
	assert.Equal(t, 1, r.PeriodOf("a"))
	assert.Equal(t, 2, r.PeriodOf("b"))
	assert.Zero(t, r.PeriodOf("missing"))
}

func TestRoadmapCheckConsistency(t *testing.T) {
	require.NoError(t, testRoadmap().CheckConsistency())
}

func TestRoadmapCheckConsistency_DuplicateUnit(t *testing.T) {
	r := testRoadmap()
	r.Periods[1].Entries = append(r.Periods[1].Entries, r.Periods[0].Entries[0])

	err := r.CheckConsistency()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled twice")
}

func TestRoadmapCheckConsistency_PrereqAfterDependent(t *testing.T) {
	r := testRoadmap()
	r.Periods[0], r.Periods[1] = r.Periods[1], r.Periods[0]
	r.Periods[0].Index = 1
	r.Periods[1].Index = 2

	err := r.CheckConsistency()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prerequisite")
}

func TestRoadmapCheckConsistency_ExternalPrereqTolerated(t *testing.T) {
	r := &Roadmap{
		Periods: []Period{
			{Index: 1, Entries: []PeriodEntry{
				{Unit: LearningUnit{ID: "b", Cost: 2, Prerequisites: []string{"outside"}}},
			}},
		},
	}
	assert.NoError(t, r.CheckConsistency())
}

func TestRoadmapSerializationRoundTrip(t *testing.T) {
	// The roadmap is handed to rendering and storage collaborators as plain
	// data; it must survive JSON without loss.
	r := testRoadmap()
	r.Periods[1].Milestones = []Milestone{{Label: "Checkpoint 1", PeriodIndex: 2, UnitsDone: 2}}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Roadmap
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *r, decoded)
}
