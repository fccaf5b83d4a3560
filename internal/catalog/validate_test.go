package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	return &Schema{
		Catalog: CatalogImport{Name: "Data Science Track"},
		Units: []UnitImport{
			{ID: "algebra", Name: "Algebra", Cost: 4, Category: "foundation"},
			{ID: "calculus", Name: "Calculus", Cost: 5, Category: "core", Prerequisites: []string{"algebra"}},
		},
		Resources: []ResourceImport{
			{ID: "r1", Title: "Algebra Crash Course", Type: "video", SkillRefs: []string{"algebra"}, QualityScore: 8, FormatTags: []string{"video"}},
		},
	}
}

func errStrings(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func TestValidateSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSchema(validSchema()))
}

func TestValidateSchema_MissingCatalogName(t *testing.T) {
	s := validSchema()
	s.Catalog.Name = ""

	errs := ValidateSchema(s)
	require.NotEmpty(t, errs)
	assert.Contains(t, errStrings(errs), "catalog.name is required")
}

func TestValidateSchema_NoUnits(t *testing.T) {
	s := validSchema()
	s.Units = nil
	s.Resources = nil

	errs := ValidateSchema(s)
	assert.Contains(t, errStrings(errs), "at least one unit is required")
}

func TestValidateSchema_DuplicateUnitID(t *testing.T) {
	s := validSchema()
	s.Units = append(s.Units, UnitImport{ID: "algebra", Name: "Algebra Again", Cost: 4, Category: "foundation"})

	errs := ValidateSchema(s)
	assert.Contains(t, errStrings(errs), `duplicate id "algebra"`)
}

func TestValidateSchema_UnitFieldErrors(t *testing.T) {
	s := validSchema()
	s.Units = append(s.Units,
		UnitImport{ID: "bad1", Name: "", Cost: 0, Category: "mythical"},
	)

	out := errStrings(ValidateSchema(s))
	assert.Contains(t, out, "units[2].name is required")
	assert.Contains(t, out, "units[2].cost must be positive")
	assert.Contains(t, out, `units[2].category: invalid value "mythical"`)
}

func TestValidateSchema_SelfPrerequisite(t *testing.T) {
	s := validSchema()
	s.Units[0].Prerequisites = []string{"algebra"}

	errs := ValidateSchema(s)
	assert.Contains(t, errStrings(errs), `references itself`)
}

func TestValidateSchema_UndefinedPrerequisite(t *testing.T) {
	s := validSchema()
	s.Units[1].Prerequisites = append(s.Units[1].Prerequisites, "ghost")

	errs := ValidateSchema(s)
	assert.Contains(t, errStrings(errs), `id "ghost" not defined in catalog`)
}

func TestValidateSchema_ForwardPrerequisiteReferenceAllowed(t *testing.T) {
	// Prerequisite order in the file does not matter, only existence.
	s := validSchema()
	s.Units[0].Prerequisites = nil
	s.Units = []UnitImport{s.Units[1], s.Units[0]}

	assert.Empty(t, ValidateSchema(s))
}

func TestValidateSchema_ResourceErrors(t *testing.T) {
	s := validSchema()
	s.Resources = append(s.Resources,
		ResourceImport{ID: "r1", Title: "", Type: "podcast", SkillRefs: nil, Cost: -1, QualityScore: 12},
	)

	out := errStrings(ValidateSchema(s))
	assert.Contains(t, out, `resources[1].id: duplicate id "r1"`)
	assert.Contains(t, out, "resources[1].title is required")
	assert.Contains(t, out, `resources[1].type: invalid value "podcast"`)
	assert.Contains(t, out, "resources[1].skill_refs must not be empty")
	assert.Contains(t, out, "resources[1].cost must be >= 0")
	assert.Contains(t, out, "resources[1].quality_score must be in [0,10]")
}

func TestValidateSchema_ResourceUnknownSkillRef(t *testing.T) {
	s := validSchema()
	s.Resources[0].SkillRefs = []string{"nonexistent"}

	errs := ValidateSchema(s)
	assert.Contains(t, errStrings(errs), `unit id "nonexistent" not defined in catalog`)
}

func TestConvert_RoundTrip(t *testing.T) {
	s := validSchema()

	converted := Convert(s)

	require.NotNil(t, converted.Catalog)
	assert.NotEmpty(t, converted.Catalog.ID)
	assert.Equal(t, "Data Science Track", converted.Catalog.Name)

	require.Len(t, converted.Units, 2)
	assert.Equal(t, "algebra", converted.Units[0].ID)
	assert.Equal(t, converted.Catalog.ID, converted.Units[0].CatalogID)
	assert.Equal(t, []string{"algebra"}, converted.Units[1].Prerequisites)
	require.NoError(t, converted.Units[0].Validate())
	require.NoError(t, converted.Units[1].Validate())

	require.Len(t, converted.Resources, 1)
	assert.Equal(t, converted.Catalog.ID, converted.Resources[0].CatalogID)
	require.NoError(t, converted.Resources[0].Validate())
}
