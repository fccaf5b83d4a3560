package service

import (
	"context"

	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/dpetrov/lodestar/internal/repository"
)

type roadmapService struct {
	roadmaps repository.RoadmapRepo
}

func NewRoadmapService(roadmaps repository.RoadmapRepo) RoadmapService {
	return &roadmapService{roadmaps: roadmaps}
}

func (s *roadmapService) List(ctx context.Context) ([]*domain.Roadmap, error) {
	return s.roadmaps.List(ctx)
}

func (s *roadmapService) GetByID(ctx context.Context, id string) (*domain.Roadmap, error) {
	return s.roadmaps.GetByID(ctx, id)
}

func (s *roadmapService) Delete(ctx context.Context, id string) error {
	return s.roadmaps.Delete(ctx, id)
}
