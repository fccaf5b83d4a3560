package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dpetrov/lodestar/internal/contract"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/dpetrov/lodestar/internal/planner"
	"github.com/dpetrov/lodestar/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	loader   *planContextLoader
	roadmaps repository.RoadmapRepo
	observer UseCaseObserver
}

func NewPlanService(
	catalogs repository.CatalogRepo,
	roadmaps repository.RoadmapRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		loader:   &planContextLoader{catalogs: catalogs},
		roadmaps: roadmaps,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
			Fields: map[string]any{
				"catalog_id":     req.CatalogID,
				"selection_size": len(req.Selection),
			},
		})
	}()

	pctx, err := s.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	order, err := planner.ResolveOrder(pctx.Selection, pctx.Goal, pctx.Units)
	if err != nil {
		return nil, err
	}

	periods, warnings := planner.BuildPeriods(order, pctx.Constraints)

	picks, pickWarnings := PickResources(order, pctx.Resources, pctx.Constraints, req.TopResources)
	warnings = append(warnings, pickWarnings...)
	AttachResources(periods, picks)

	roadmap, err := planner.Assemble(periods, pctx.Goal, req.MilestoneEvery)
	if err != nil {
		return nil, err
	}

	roadmap.ID = uuid.New().String()
	roadmap.CatalogID = pctx.Catalog.ID
	roadmap.Granularity = granularityOrDefault(pctx.Constraints.PeriodGranularity)
	roadmap.CreatedAt = pctx.Now

	if req.Save {
		if err := s.roadmaps.Save(ctx, roadmap); err != nil {
			return nil, fmt.Errorf("saving roadmap: %w", err)
		}
	}

	return &contract.PlanResponse{
		Roadmap:  roadmap,
		Warnings: warnings,
		Picks:    FlattenPicks(order, picks),
	}, nil
}

func granularityOrDefault(g domain.Granularity) domain.Granularity {
	if g == "" {
		return domain.GranularityWeek
	}
	return g
}
