package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dpetrov/lodestar/internal/catalog"
	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogImport_FullStructure(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewCatalogService(catalogs, uow)

	path := writeCatalogJSON(t, algebraSchema())
	result, err := svc.Import(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "Algebra Track", result.Catalog.Name)
	assert.NotEmpty(t, result.Catalog.ID)
	assert.Equal(t, 4, result.UnitCount)
	assert.Equal(t, 3, result.ResourceCount)

	units, err := svc.ListUnits(ctx, result.Catalog.ID)
	require.NoError(t, err)
	require.Len(t, units, 4)

	byID := make(map[string][]string)
	for _, u := range units {
		byID[u.ID] = u.Prerequisites
	}
	assert.Equal(t, []string{"alg1"}, byID["alg2"])
	assert.Equal(t, []string{"arith"}, byID["geom"])

	resources, err := svc.ListResources(ctx, result.Catalog.ID)
	require.NoError(t, err)
	require.Len(t, resources, 3)
}

func TestCatalogImport_ValidationFailureAggregatesErrors(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	svc := NewCatalogService(catalogs, uow)

	schema := &catalog.Schema{
		Catalog: catalog.CatalogImport{Name: "Broken"},
		Units: []catalog.UnitImport{
			{ID: "a", Name: "A", Cost: 2, Category: "core", Prerequisites: []string{"missing"}},
			{ID: "b", Name: "", Cost: -1, Category: "nope"},
		},
	}

	_, err := svc.ImportFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed")
	assert.Contains(t, err.Error(), "missing")

	// Nothing persisted on validation failure.
	list, lerr := svc.List(context.Background())
	require.NoError(t, lerr)
	assert.Empty(t, list)
}

func TestCatalogImport_RollbackOnMidImportFailure(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	ctx := context.Background()

	// Drive the import write path directly and fail partway through: the
	// catalog and its first unit are written inside the transaction, then an
	// error forces a rollback. Nothing may survive.
	converted := catalog.Convert(algebraSchema())
	failErr := errors.New("mid-import failure")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		if err := repo.Create(ctx, converted.Catalog); err != nil {
			return err
		}
		if err := repo.CreateUnit(ctx, converted.Units[0]); err != nil {
			return err
		}
		return failErr
	})
	require.ErrorIs(t, err, failErr)

	list, lerr := catalogs.List(ctx)
	require.NoError(t, lerr)
	assert.Empty(t, list)

	units, uerr := catalogs.ListUnits(ctx, converted.Catalog.ID)
	require.NoError(t, uerr)
	assert.Empty(t, units)
}

func TestCatalogImport_MissingFile(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	svc := NewCatalogService(catalogs, uow)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog file")
}

func TestCatalogImport_MalformedJSON(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	svc := NewCatalogService(catalogs, uow)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := svc.Import(context.Background(), path)
	require.Error(t, err)
}

func TestCatalogDelete_RemovesUnitsAndResources(t *testing.T) {
	catalogs, _, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewCatalogService(catalogs, uow)

	catalogID := importAlgebra(t, svc)
	require.NoError(t, svc.Delete(ctx, catalogID))

	units, err := svc.ListUnits(ctx, catalogID)
	require.NoError(t, err)
	assert.Empty(t, units)

	resources, err := svc.ListResources(ctx, catalogID)
	require.NoError(t, err)
	assert.Empty(t, resources)
}
