package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo over SQLite. It accepts a db.DBTX
// so the same repository code runs both standalone and inside a unit of work
// during catalog import.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(dbtx db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: dbtx}
}

func (r *SQLiteCatalogRepo) Create(ctx context.Context, c *domain.Catalog) error {
	query := `INSERT INTO catalogs (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting catalog: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) GetByID(ctx context.Context, id string) (*domain.Catalog, error) {
	query := `SELECT id, name, created_at FROM catalogs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanCatalog(row)
}

func (r *SQLiteCatalogRepo) List(ctx context.Context) ([]*domain.Catalog, error) {
	query := `SELECT id, name, created_at FROM catalogs ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalogs: %w", err)
	}
	defer rows.Close()

	var catalogs []*domain.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, rows.Err()
}

func (r *SQLiteCatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting catalog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("catalog %q not found", id)
	}
	return nil
}

func (r *SQLiteCatalogRepo) CreateUnit(ctx context.Context, u *domain.LearningUnit) error {
	query := `INSERT INTO learning_units (id, catalog_id, name, cost, difficulty, category)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.CatalogID, u.Name, u.Cost, u.Difficulty, string(u.Category))
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	for _, prereq := range u.Prerequisites {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO unit_prereqs (catalog_id, unit_id, prereq_id) VALUES (?, ?, ?)`,
			u.CatalogID, u.ID, prereq)
		if err != nil {
			return fmt.Errorf("inserting prerequisite %q of unit %q: %w", prereq, u.ID, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListUnits(ctx context.Context, catalogID string) ([]domain.LearningUnit, error) {
	query := `SELECT id, catalog_id, name, cost, difficulty, category
		FROM learning_units WHERE catalog_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, catalogID)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var units []domain.LearningUnit
	index := make(map[string]int)
	for rows.Next() {
		var u domain.LearningUnit
		var category string
		if err := rows.Scan(&u.ID, &u.CatalogID, &u.Name, &u.Cost, &u.Difficulty, &category); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		u.Category = domain.Category(category)
		index[u.ID] = len(units)
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prereqRows, err := r.db.QueryContext(ctx,
		`SELECT unit_id, prereq_id FROM unit_prereqs WHERE catalog_id = ? ORDER BY unit_id, prereq_id`,
		catalogID)
	if err != nil {
		return nil, fmt.Errorf("listing prerequisites: %w", err)
	}
	defer prereqRows.Close()

	for prereqRows.Next() {
		var unitID, prereqID string
		if err := prereqRows.Scan(&unitID, &prereqID); err != nil {
			return nil, fmt.Errorf("scanning prerequisite: %w", err)
		}
		if i, ok := index[unitID]; ok {
			units[i].Prerequisites = append(units[i].Prerequisites, prereqID)
		}
	}
	return units, prereqRows.Err()
}

func (r *SQLiteCatalogRepo) CreateResource(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, catalog_id, title, type, hours, cost, quality_score, format_tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.CatalogID, res.Title, string(res.Type),
		res.Hours, res.Cost, res.QualityScore, tagsToString(res.FormatTags))
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	for _, ref := range res.SkillRefs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO resource_skills (catalog_id, resource_id, unit_id) VALUES (?, ?, ?)`,
			res.CatalogID, res.ID, ref)
		if err != nil {
			return fmt.Errorf("inserting skill ref %q of resource %q: %w", ref, res.ID, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListResources(ctx context.Context, catalogID string) ([]domain.Resource, error) {
	query := `SELECT id, catalog_id, title, type, hours, cost, quality_score, format_tags
		FROM resources WHERE catalog_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, catalogID)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []domain.Resource
	index := make(map[string]int)
	for rows.Next() {
		var res domain.Resource
		var resType, tags string
		if err := rows.Scan(&res.ID, &res.CatalogID, &res.Title, &resType, &res.Hours, &res.Cost, &res.QualityScore, &tags); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		res.Type = domain.ResourceType(resType)
		res.FormatTags = stringToTags(tags)
		index[res.ID] = len(resources)
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refRows, err := r.db.QueryContext(ctx,
		`SELECT resource_id, unit_id FROM resource_skills WHERE catalog_id = ? ORDER BY resource_id, unit_id`,
		catalogID)
	if err != nil {
		return nil, fmt.Errorf("listing skill refs: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var resourceID, unitID string
		if err := refRows.Scan(&resourceID, &unitID); err != nil {
			return nil, fmt.Errorf("scanning skill ref: %w", err)
		}
		if i, ok := index[resourceID]; ok {
			resources[i].SkillRefs = append(resources[i].SkillRefs, unitID)
		}
	}
	return resources, refRows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalog(row rowScanner) (*domain.Catalog, error) {
	var c domain.Catalog
	var createdAt string
	if err := row.Scan(&c.ID, &c.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning catalog: %w", err)
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog created_at: %w", err)
	}
	c.CreatedAt = t
	return &c, nil
}
