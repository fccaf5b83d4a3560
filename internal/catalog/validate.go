package catalog

import (
	"fmt"

	"github.com/dpetrov/lodestar/internal/domain"
)

// ValidateSchema checks the catalog schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if schema.Catalog.Name == "" {
		errs = append(errs, fmt.Errorf("catalog.name is required"))
	}
	if len(schema.Units) == 0 {
		errs = append(errs, fmt.Errorf("units: at least one unit is required"))
	}

	unitIDs := make(map[string]bool)
	errs = append(errs, validateUnits(schema.Units, unitIDs)...)
	errs = append(errs, validatePrerequisites(schema.Units, unitIDs)...)
	errs = append(errs, validateResources(schema.Resources, unitIDs)...)

	return errs
}

func validateUnits(units []UnitImport, unitIDs map[string]bool) []error {
	var errs []error

	for i, u := range units {
		prefix := fmt.Sprintf("units[%d]", i)

		if u.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if unitIDs[u.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, u.ID))
		} else {
			unitIDs[u.ID] = true
		}

		if u.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if u.Cost <= 0 {
			errs = append(errs, fmt.Errorf("%s.cost must be positive, got %v", prefix, u.Cost))
		}
		if u.Category == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		} else if !domain.ValidCategories[u.Category] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, u.Category))
		}
		if u.Difficulty < 0 {
			errs = append(errs, fmt.Errorf("%s.difficulty must be >= 0", prefix))
		}
	}

	return errs
}

// validatePrerequisites runs after all unit IDs are collected: a prerequisite
// referencing an ID the file never defines is a content error at import time,
// never a silent skip at plan time.
func validatePrerequisites(units []UnitImport, unitIDs map[string]bool) []error {
	var errs []error

	for i, u := range units {
		prefix := fmt.Sprintf("units[%d]", i)
		seen := make(map[string]bool, len(u.Prerequisites))
		for _, p := range u.Prerequisites {
			if p == u.ID {
				errs = append(errs, fmt.Errorf("%s.prerequisites: unit %q references itself", prefix, u.ID))
				continue
			}
			if seen[p] {
				errs = append(errs, fmt.Errorf("%s.prerequisites: duplicate entry %q", prefix, p))
				continue
			}
			seen[p] = true
			if !unitIDs[p] {
				errs = append(errs, fmt.Errorf("%s.prerequisites: id %q not defined in catalog", prefix, p))
			}
		}
	}

	return errs
}

func validateResources(resources []ResourceImport, unitIDs map[string]bool) []error {
	var errs []error

	resourceIDs := make(map[string]bool, len(resources))
	for i, r := range resources {
		prefix := fmt.Sprintf("resources[%d]", i)

		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if resourceIDs[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, r.ID))
		} else {
			resourceIDs[r.ID] = true
		}

		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if r.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		} else if !domain.ValidResourceTypes[r.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, r.Type))
		}
		if len(r.SkillRefs) == 0 {
			errs = append(errs, fmt.Errorf("%s.skill_refs must not be empty", prefix))
		}
		for _, ref := range r.SkillRefs {
			if !unitIDs[ref] {
				errs = append(errs, fmt.Errorf("%s.skill_refs: unit id %q not defined in catalog", prefix, ref))
			}
		}
		if r.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s.cost must be >= 0", prefix))
		}
		if r.QualityScore < 0 || r.QualityScore > 10 {
			errs = append(errs, fmt.Errorf("%s.quality_score must be in [0,10], got %v", prefix, r.QualityScore))
		}
		if r.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s.hours must be >= 0", prefix))
		}
	}

	return errs
}
