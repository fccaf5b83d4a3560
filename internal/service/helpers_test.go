package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dpetrov/lodestar/internal/catalog"
	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/repository"
	"github.com/dpetrov/lodestar/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (*repository.SQLiteCatalogRepo, *repository.SQLiteRoadmapRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteCatalogRepo(database),
		repository.NewSQLiteRoadmapRepo(database),
		testutil.NewTestUoW(database)
}

func writeCatalogJSON(t *testing.T, schema *catalog.Schema) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	data, err := json.MarshalIndent(schema, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// algebraSchema is a small valid catalog used across service tests: four
// units forming a chain with one branch, plus resources for most of them.
func algebraSchema() *catalog.Schema {
	return &catalog.Schema{
		Catalog: catalog.CatalogImport{Name: "Algebra Track"},
		Units: []catalog.UnitImport{
			{ID: "arith", Name: "Arithmetic", Cost: 3, Category: "foundation"},
			{ID: "alg1", Name: "Algebra I", Cost: 4, Prerequisites: []string{"arith"}, Category: "core"},
			{ID: "alg2", Name: "Algebra II", Cost: 5, Prerequisites: []string{"alg1"}, Category: "core"},
			{ID: "geom", Name: "Geometry", Cost: 4, Prerequisites: []string{"arith"}, Category: "core"},
		},
		Resources: []catalog.ResourceImport{
			{ID: "r-arith", Title: "Arithmetic Basics", Type: "book", SkillRefs: []string{"arith"},
				Hours: 10, Cost: 0, QualityScore: 8},
			{ID: "r-alg", Title: "Algebra Course", Type: "course", SkillRefs: []string{"alg1", "alg2"},
				Hours: 30, Cost: 25, QualityScore: 9, FormatTags: []string{"video", "interactive"}},
			{ID: "r-geom", Title: "Geometry Workbook", Type: "book", SkillRefs: []string{"geom"},
				Hours: 15, Cost: 12, QualityScore: 7},
		},
	}
}

func importAlgebra(t *testing.T, svc CatalogService) string {
	t.Helper()
	result, err := svc.ImportFromSchema(context.Background(), algebraSchema())
	require.NoError(t, err)
	return result.Catalog.ID
}
