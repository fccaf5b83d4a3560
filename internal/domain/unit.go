package domain

import "fmt"

// LearningUnit is one plannable piece of the catalog: a course, module, or
// skill. Cost is the effort in hours a learner needs to complete it.
type LearningUnit struct {
	ID            string   `json:"id"`
	CatalogID     string   `json:"catalog_id"`
	Name          string   `json:"name"`
	Cost          float64  `json:"cost"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty"`
	Category      Category `json:"category"`
}

// Validate checks the unit invariants.
func (u *LearningUnit) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("unit id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("unit name is required")
	}
	if u.Cost <= 0 {
		return fmt.Errorf("unit %q: cost must be positive, got %v", u.ID, u.Cost)
	}
	if !ValidCategories[string(u.Category)] {
		return fmt.Errorf("unit %q: invalid category %q", u.ID, u.Category)
	}
	for _, p := range u.Prerequisites {
		if p == u.ID {
			return fmt.Errorf("unit %q references itself as a prerequisite", u.ID)
		}
	}
	return nil
}

// HasPrerequisite reports whether id is a direct prerequisite of the unit.
func (u *LearningUnit) HasPrerequisite(id string) bool {
	for _, p := range u.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}
