package app

import (
	"time"

	"github.com/dpetrov/lodestar/internal/domain"
)

// PlanRequest carries everything a single planning run needs. It is
// immutable for the duration of the request; re-running an identical
// request yields an identical roadmap.
type PlanRequest struct {
	CatalogID      string
	GoalName       string
	GoalUnitIDs    []string
	Selection      domain.SelectionSet
	Constraints    domain.UserConstraints
	TopResources   int        // per-unit resource picks, default 3
	MilestoneEvery int        // units per milestone, default 4
	Save           bool       // persist the roadmap after planning
	Now            *time.Time // test hook; nil = time.Now().UTC()
}

// NewPlanRequest returns a request with the standard defaults applied.
func NewPlanRequest(catalogID string, selection []string) PlanRequest {
	return PlanRequest{
		CatalogID:      catalogID,
		Selection:      selection,
		TopResources:   3,
		MilestoneEvery: 4,
	}
}

// ResourcePick records why a resource was chosen for a unit, for callers
// that want to explain the plan.
type ResourcePick struct {
	UnitID   string
	Resource domain.Resource
	Score    float64
	Reasons  []PickReason
}

// PlanResponse is the planning output handed to the rendering layer.
type PlanResponse struct {
	Roadmap  *domain.Roadmap
	Warnings []PlanWarning
	Picks    []ResourcePick
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	Catalog       *domain.Catalog
	UnitCount     int
	ResourceCount int
}
