package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; re-running
// the full list against an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS catalogs (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS learning_units (
		id         TEXT NOT NULL,
		catalog_id TEXT NOT NULL REFERENCES catalogs(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		cost       REAL NOT NULL CHECK(cost > 0),
		difficulty INTEGER NOT NULL DEFAULT 0,
		category   TEXT NOT NULL
		           CHECK(category IN ('foundation','core','advanced','specialized')),
		PRIMARY KEY (catalog_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_learning_units_catalog ON learning_units(catalog_id)`,

	`CREATE TABLE IF NOT EXISTS unit_prereqs (
		catalog_id TEXT NOT NULL,
		unit_id    TEXT NOT NULL,
		prereq_id  TEXT NOT NULL,
		PRIMARY KEY (catalog_id, unit_id, prereq_id),
		FOREIGN KEY (catalog_id, unit_id) REFERENCES learning_units(catalog_id, id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id            TEXT NOT NULL,
		catalog_id    TEXT NOT NULL REFERENCES catalogs(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		type          TEXT NOT NULL
		              CHECK(type IN ('book','video','course','article')),
		hours         REAL NOT NULL DEFAULT 0,
		cost          REAL NOT NULL CHECK(cost >= 0),
		quality_score REAL NOT NULL CHECK(quality_score >= 0 AND quality_score <= 10),
		format_tags   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (catalog_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_catalog ON resources(catalog_id)`,

	`CREATE TABLE IF NOT EXISTS resource_skills (
		catalog_id  TEXT NOT NULL,
		resource_id TEXT NOT NULL,
		unit_id     TEXT NOT NULL,
		PRIMARY KEY (catalog_id, resource_id, unit_id),
		FOREIGN KEY (catalog_id, resource_id) REFERENCES resources(catalog_id, id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resource_skills_unit ON resource_skills(catalog_id, unit_id)`,

	`CREATE TABLE IF NOT EXISTS roadmaps (
		id         TEXT PRIMARY KEY,
		catalog_id TEXT NOT NULL REFERENCES catalogs(id) ON DELETE CASCADE,
		goal_name  TEXT NOT NULL DEFAULT '',
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_roadmaps_catalog ON roadmaps(catalog_id)`,
}
