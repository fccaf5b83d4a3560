package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDBInMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var fk int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys must be enforced")
}

func TestMigrateIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated; a second run must not fail.
	require.NoError(t, Migrate(database))

	for _, table := range []string{"catalogs", "learning_units", "unit_prereqs", "resources", "resource_skills", "roadmaps"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}

func TestCascadeDeleteCatalog(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO catalogs (id, name, created_at) VALUES ('c1', 'Test', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO learning_units (id, catalog_id, name, cost, category) VALUES ('u1', 'c1', 'Unit', 4, 'core')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO unit_prereqs (catalog_id, unit_id, prereq_id) VALUES ('c1', 'u1', 'u0')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM catalogs WHERE id = 'c1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM learning_units`).Scan(&count))
	assert.Zero(t, count, "units must cascade")
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM unit_prereqs`).Scan(&count))
	assert.Zero(t, count, "prereqs must cascade")
}
