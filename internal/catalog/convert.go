package catalog

import (
	"time"

	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/google/uuid"
)

// Converted bundles the domain objects produced from one catalog schema.
type Converted struct {
	Catalog   *domain.Catalog
	Units     []*domain.LearningUnit
	Resources []*domain.Resource
}

// Convert transforms a validated Schema into domain objects ready for
// persistence. Call ValidateSchema first; Convert assumes the schema is valid.
// Unit and resource IDs are author-chosen and kept verbatim; only the catalog
// itself gets a generated ID.
func Convert(schema *Schema) *Converted {
	now := time.Now().UTC()

	cat := &domain.Catalog{
		ID:        uuid.New().String(),
		Name:      schema.Catalog.Name,
		CreatedAt: now,
	}

	units := make([]*domain.LearningUnit, 0, len(schema.Units))
	for _, u := range schema.Units {
		units = append(units, &domain.LearningUnit{
			ID:            u.ID,
			CatalogID:     cat.ID,
			Name:          u.Name,
			Cost:          u.Cost,
			Prerequisites: append([]string(nil), u.Prerequisites...),
			Difficulty:    u.Difficulty,
			Category:      domain.Category(u.Category),
		})
	}

	resources := make([]*domain.Resource, 0, len(schema.Resources))
	for _, r := range schema.Resources {
		resources = append(resources, &domain.Resource{
			ID:           r.ID,
			CatalogID:    cat.ID,
			Title:        r.Title,
			Type:         domain.ResourceType(r.Type),
			SkillRefs:    append([]string(nil), r.SkillRefs...),
			Hours:        r.Hours,
			Cost:         r.Cost,
			QualityScore: r.QualityScore,
			FormatTags:   append([]string(nil), r.FormatTags...),
		})
	}

	return &Converted{Catalog: cat, Units: units, Resources: resources}
}
