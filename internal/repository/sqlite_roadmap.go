package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/domain"
)

// SQLiteRoadmapRepo stores finished roadmaps as JSON payloads. A roadmap is
// an immutable artifact: it is saved once and only ever read back whole or
// deleted, so a serialized column beats a normalized schema here.
type SQLiteRoadmapRepo struct {
	db db.DBTX
}

// NewSQLiteRoadmapRepo creates a new SQLiteRoadmapRepo.
func NewSQLiteRoadmapRepo(dbtx db.DBTX) *SQLiteRoadmapRepo {
	return &SQLiteRoadmapRepo{db: dbtx}
}

func (r *SQLiteRoadmapRepo) Save(ctx context.Context, roadmap *domain.Roadmap) error {
	payload, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("serializing roadmap: %w", err)
	}
	query := `INSERT INTO roadmaps (id, catalog_id, goal_name, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		roadmap.ID, roadmap.CatalogID, roadmap.GoalName, string(payload),
		roadmap.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting roadmap: %w", err)
	}
	return nil
}

func (r *SQLiteRoadmapRepo) GetByID(ctx context.Context, id string) (*domain.Roadmap, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM roadmaps WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("loading roadmap %q: %w", id, err)
	}
	var roadmap domain.Roadmap
	if err := json.Unmarshal([]byte(payload), &roadmap); err != nil {
		return nil, fmt.Errorf("deserializing roadmap %q: %w", id, err)
	}
	return &roadmap, nil
}

func (r *SQLiteRoadmapRepo) List(ctx context.Context) ([]*domain.Roadmap, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM roadmaps ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []*domain.Roadmap
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning roadmap: %w", err)
		}
		var roadmap domain.Roadmap
		if err := json.Unmarshal([]byte(payload), &roadmap); err != nil {
			return nil, fmt.Errorf("deserializing roadmap: %w", err)
		}
		roadmaps = append(roadmaps, &roadmap)
	}
	return roadmaps, rows.Err()
}

func (r *SQLiteRoadmapRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmaps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting roadmap: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("roadmap %q not found", id)
	}
	return nil
}
