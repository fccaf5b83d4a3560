package testutil

import (
	"time"

	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/google/uuid"
)

// Catalog options

type CatalogOption func(*domain.Catalog)

func WithCatalogName(name string) CatalogOption {
	return func(c *domain.Catalog) {
		c.Name = name
	}
}

func NewTestCatalog(opts ...CatalogOption) *domain.Catalog {
	c := &domain.Catalog{
		ID:        uuid.New().String(),
		Name:      "Test Catalog",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Unit options

type UnitOption func(*domain.LearningUnit)

func WithPrereqs(ids ...string) UnitOption {
	return func(u *domain.LearningUnit) {
		u.Prerequisites = ids
	}
}

func WithCost(cost float64) UnitOption {
	return func(u *domain.LearningUnit) {
		u.Cost = cost
	}
}

func WithCategory(c domain.Category) UnitOption {
	return func(u *domain.LearningUnit) {
		u.Category = c
	}
}

func WithDifficulty(d int) UnitOption {
	return func(u *domain.LearningUnit) {
		u.Difficulty = d
	}
}

func NewTestUnit(id, catalogID string, opts ...UnitOption) *domain.LearningUnit {
	u := &domain.LearningUnit{
		ID:        id,
		CatalogID: catalogID,
		Name:      "Unit " + id,
		Cost:      4,
		Category:  domain.CategoryCore,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Resource options

type ResourceOption func(*domain.Resource)

func WithResourceType(t domain.ResourceType) ResourceOption {
	return func(r *domain.Resource) {
		r.Type = t
	}
}

func WithResourceCost(cost float64) ResourceOption {
	return func(r *domain.Resource) {
		r.Cost = cost
	}
}

func WithQuality(q float64) ResourceOption {
	return func(r *domain.Resource) {
		r.QualityScore = q
	}
}

func WithTags(tags ...string) ResourceOption {
	return func(r *domain.Resource) {
		r.FormatTags = tags
	}
}

func NewTestResource(id, catalogID string, skillRefs []string, opts ...ResourceOption) *domain.Resource {
	r := &domain.Resource{
		ID:           id,
		CatalogID:    catalogID,
		Title:        "Resource " + id,
		Type:         domain.ResourceBook,
		SkillRefs:    skillRefs,
		Hours:        10,
		QualityScore: 7,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
