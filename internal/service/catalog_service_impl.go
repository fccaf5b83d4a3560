package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dpetrov/lodestar/internal/catalog"
	"github.com/dpetrov/lodestar/internal/contract"
	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/dpetrov/lodestar/internal/repository"
)

type catalogService struct {
	catalogs repository.CatalogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewCatalogService builds the catalog use cases. The UnitOfWork is used for
// imports so a catalog and its units and resources land atomically.
func NewCatalogService(
	catalogs repository.CatalogRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		catalogs: catalogs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, filePath string) (*contract.ImportResult, error) {
	schema, err := catalog.LoadSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *catalogService) ImportFromSchema(ctx context.Context, schema *catalog.Schema) (result *contract.ImportResult, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "catalog_import",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	if errs := catalog.ValidateSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted := catalog.Convert(schema)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)

		if err := repo.Create(ctx, converted.Catalog); err != nil {
			return fmt.Errorf("creating catalog: %w", err)
		}
		for _, u := range converted.Units {
			if err := repo.CreateUnit(ctx, u); err != nil {
				return fmt.Errorf("creating unit %q: %w", u.ID, err)
			}
		}
		for _, r := range converted.Resources {
			if err := repo.CreateResource(ctx, r); err != nil {
				return fmt.Errorf("creating resource %q: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.ImportResult{
		Catalog:       converted.Catalog,
		UnitCount:     len(converted.Units),
		ResourceCount: len(converted.Resources),
	}, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*domain.Catalog, error) {
	return s.catalogs.GetByID(ctx, id)
}

func (s *catalogService) List(ctx context.Context) ([]*domain.Catalog, error) {
	return s.catalogs.List(ctx)
}

func (s *catalogService) ListUnits(ctx context.Context, catalogID string) ([]domain.LearningUnit, error) {
	return s.catalogs.ListUnits(ctx, catalogID)
}

func (s *catalogService) ListResources(ctx context.Context, catalogID string) ([]domain.Resource, error) {
	return s.catalogs.ListResources(ctx, catalogID)
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.catalogs.Delete(ctx, id)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
