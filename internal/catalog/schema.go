package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Schema is the top-level JSON structure for catalog import.
type Schema struct {
	Catalog   CatalogImport    `json:"catalog"`
	Units     []UnitImport     `json:"units"`
	Resources []ResourceImport `json:"resources,omitempty"`
}

// CatalogImport defines the catalog-level fields in the import file.
type CatalogImport struct {
	Name string `json:"name"`
}

// UnitImport defines a learning unit in the import file.
type UnitImport struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cost          float64  `json:"cost"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty"`
	Category      string   `json:"category"`
}

// ResourceImport defines a learning resource in the import file.
type ResourceImport struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	SkillRefs    []string `json:"skill_refs"`
	Hours        float64  `json:"hours,omitempty"`
	Cost         float64  `json:"cost"`
	QualityScore float64  `json:"quality_score"`
	FormatTags   []string `json:"format_tags,omitempty"`
}

// LoadSchema reads and parses a catalog import JSON file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
