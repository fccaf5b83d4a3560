package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/dpetrov/lodestar/internal/planner"
	"github.com/dpetrov/lodestar/internal/repository"
)

// PlanContext bundles all data loaded for one planning run. Everything past
// this point is pure computation: the loader is the only phase touching I/O.
type PlanContext struct {
	Now         time.Time
	Catalog     *domain.Catalog
	Units       []domain.LearningUnit
	Resources   []domain.Resource
	Selection   domain.SelectionSet
	Goal        *domain.Goal
	Constraints domain.UserConstraints
}

// planContextLoader validates the request and loads catalog data.
type planContextLoader struct {
	catalogs repository.CatalogRepo
}

func (cl *planContextLoader) Load(ctx context.Context, req app.PlanRequest) (*PlanContext, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, &app.PlanError{
			Code:    app.ErrInvalidRequest,
			Message: err.Error(),
		}
	}
	if len(req.Selection) == 0 && len(req.GoalUnitIDs) == 0 {
		return nil, &app.PlanError{
			Code:    app.ErrEmptySelection,
			Message: "selection must contain at least one unit",
		}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	cat, err := cl.catalogs.GetByID(ctx, req.CatalogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &app.PlanError{
				Code:    app.ErrCatalogNotFound,
				Message: fmt.Sprintf("catalog %q not found", req.CatalogID),
			}
		}
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	units, err := cl.catalogs.ListUnits(ctx, req.CatalogID)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	resources, err := cl.catalogs.ListResources(ctx, req.CatalogID)
	if err != nil {
		return nil, fmt.Errorf("loading resources: %w", err)
	}

	var goal *domain.Goal
	if len(req.GoalUnitIDs) > 0 {
		goal = &domain.Goal{Name: req.GoalName, UnitIDs: req.GoalUnitIDs}
	}

	return &PlanContext{
		Now:         now,
		Catalog:     cat,
		Units:       units,
		Resources:   resources,
		Selection:   unionSelection(req.Selection, req.GoalUnitIDs),
		Goal:        goal,
		Constraints: req.Constraints,
	}, nil
}

// unionSelection folds the goal's required units into the selection so a
// goal can never name a unit the roadmap omits.
func unionSelection(selection domain.SelectionSet, goalUnits []string) domain.SelectionSet {
	present := selection.ToSet()
	out := append(domain.SelectionSet(nil), selection...)
	for _, id := range goalUnits {
		if !present[id] {
			present[id] = true
			out = append(out, id)
		}
	}
	return out
}

// PickResources selects the top resources for every unit in the resolved
// order. Units with no matching resources yield a warning, never an error.
func PickResources(
	order []domain.LearningUnit,
	resources []domain.Resource,
	constraints domain.UserConstraints,
	topK int,
) (map[string][]planner.ScoredResource, []app.PlanWarning) {
	picks := make(map[string][]planner.ScoredResource, len(order))
	var warnings []app.PlanWarning
	for _, u := range order {
		scored := planner.SelectResources(u, resources, constraints, topK)
		if len(scored) == 0 {
			warnings = append(warnings, app.NewNoResourcesWarning(u.ID))
			continue
		}
		picks[u.ID] = scored
	}
	return picks, warnings
}

// AttachResources fills each scheduled entry with its picked resources.
func AttachResources(periods []domain.Period, picks map[string][]planner.ScoredResource) {
	for pi := range periods {
		for ei := range periods[pi].Entries {
			entry := &periods[pi].Entries[ei]
			for _, pick := range picks[entry.Unit.ID] {
				entry.Resources = append(entry.Resources, pick.Resource)
			}
		}
	}
}

// FlattenPicks converts the per-unit pick map into response picks, ordered
// by the resolved unit order for determinism.
func FlattenPicks(order []domain.LearningUnit, picks map[string][]planner.ScoredResource) []app.ResourcePick {
	var out []app.ResourcePick
	for _, u := range order {
		for _, pick := range picks[u.ID] {
			out = append(out, app.ResourcePick{
				UnitID:   u.ID,
				Resource: pick.Resource,
				Score:    pick.Score,
				Reasons:  pick.Reasons,
			})
		}
	}
	return out
}
