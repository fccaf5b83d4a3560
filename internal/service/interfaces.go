package service

import (
	"context"

	"github.com/dpetrov/lodestar/internal/catalog"
	"github.com/dpetrov/lodestar/internal/contract"
	"github.com/dpetrov/lodestar/internal/domain"
)

type CatalogService interface {
	Import(ctx context.Context, filePath string) (*contract.ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *catalog.Schema) (*contract.ImportResult, error)
	GetByID(ctx context.Context, id string) (*domain.Catalog, error)
	List(ctx context.Context) ([]*domain.Catalog, error)
	ListUnits(ctx context.Context, catalogID string) ([]domain.LearningUnit, error)
	ListResources(ctx context.Context, catalogID string) ([]domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type RoadmapService interface {
	List(ctx context.Context) ([]*domain.Roadmap, error)
	GetByID(ctx context.Context, id string) (*domain.Roadmap, error)
	Delete(ctx context.Context, id string) error
}
