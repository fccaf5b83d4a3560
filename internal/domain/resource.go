package domain

import "fmt"

// Resource is study material covering one or more learning units. Quality is
// a curator rating on a 0-10 scale; FormatTags describe the delivery style
// (e.g. "video", "interactive") and are matched against the user's format
// preference during selection.
type Resource struct {
	ID           string       `json:"id"`
	CatalogID    string       `json:"catalog_id"`
	Title        string       `json:"title"`
	Type         ResourceType `json:"type"`
	SkillRefs    []string     `json:"skill_refs"`
	Hours        float64      `json:"hours,omitempty"`
	Cost         float64      `json:"cost"`
	QualityScore float64      `json:"quality_score"`
	FormatTags   []string     `json:"format_tags,omitempty"`
}

// Validate checks the resource invariants.
func (r *Resource) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("resource id is required")
	}
	if !ValidResourceTypes[string(r.Type)] {
		return fmt.Errorf("resource %q: invalid type %q", r.ID, r.Type)
	}
	if len(r.SkillRefs) == 0 {
		return fmt.Errorf("resource %q: skill refs must not be empty", r.ID)
	}
	if r.Cost < 0 {
		return fmt.Errorf("resource %q: cost must be >= 0, got %v", r.ID, r.Cost)
	}
	if r.QualityScore < 0 || r.QualityScore > 10 {
		return fmt.Errorf("resource %q: quality score must be in [0,10], got %v", r.ID, r.QualityScore)
	}
	if r.Hours < 0 {
		return fmt.Errorf("resource %q: hours must be >= 0, got %v", r.ID, r.Hours)
	}
	return nil
}

// Satisfies reports whether the resource covers the given unit.
func (r *Resource) Satisfies(unitID string) bool {
	for _, ref := range r.SkillRefs {
		if ref == unitID {
			return true
		}
	}
	return false
}

// HasTag reports whether the resource carries the given format tag.
func (r *Resource) HasTag(tag string) bool {
	for _, t := range r.FormatTags {
		if t == tag {
			return true
		}
	}
	return false
}
