package repository

import (
	"context"

	"github.com/dpetrov/lodestar/internal/domain"
)

type CatalogRepo interface {
	Create(ctx context.Context, c *domain.Catalog) error
	GetByID(ctx context.Context, id string) (*domain.Catalog, error)
	List(ctx context.Context) ([]*domain.Catalog, error)
	Delete(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, u *domain.LearningUnit) error
	ListUnits(ctx context.Context, catalogID string) ([]domain.LearningUnit, error)

	CreateResource(ctx context.Context, r *domain.Resource) error
	ListResources(ctx context.Context, catalogID string) ([]domain.Resource, error)
}

type RoadmapRepo interface {
	Save(ctx context.Context, r *domain.Roadmap) error
	GetByID(ctx context.Context, id string) (*domain.Roadmap, error)
	List(ctx context.Context) ([]*domain.Roadmap, error)
	Delete(ctx context.Context, id string) error
}
