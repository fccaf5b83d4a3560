package planner

import (
	"testing"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resource(id string, quality, cost float64, refs []string, tags ...string) domain.Resource {
	return domain.Resource{
		ID:           id,
		Title:        "Resource " + id,
		Type:         domain.ResourceBook,
		SkillRefs:    refs,
		QualityScore: quality,
		Cost:         cost,
		FormatTags:   tags,
	}
}

func TestScoreResource_QualityBase(t *testing.T) {
	scored := ScoreResource(ResourceScoreInput{
		Resource: resource("r1", 8, 20, []string{"a"}),
		Budget:   100,
	})

	assert.InDelta(t, 80.0, scored.Score, 0.001)
	require.Len(t, scored.Reasons, 1)
	assert.Equal(t, app.ReasonQualityBase, scored.Reasons[0].Code)
}

func TestScoreResource_OverBudgetPenalized(t *testing.T) {
	scored := ScoreResource(ResourceScoreInput{
		Resource: resource("r1", 9, 150, []string{"a"}),
		Budget:   50,
	})

	// 9*10 - 50 penalty
	assert.InDelta(t, 40.0, scored.Score, 0.001)

	codes := reasonCodes(scored.Reasons)
	assert.Contains(t, codes, app.ReasonOverBudget)
}

func TestScoreResource_FreeBonusAndFormatMatch(t *testing.T) {
	scored := ScoreResource(ResourceScoreInput{
		Resource:         resource("r1", 7, 0, []string{"a"}, "video", "projects"),
		Budget:           0,
		FormatPreference: "video",
	})

	// 7*10 + 10 free + 15 format
	assert.InDelta(t, 95.0, scored.Score, 0.001)

	codes := reasonCodes(scored.Reasons)
	assert.Contains(t, codes, app.ReasonFreeResource)
	assert.Contains(t, codes, app.ReasonFormatMatch)
}

func TestSelectResources_FiltersBySkillRef(t *testing.T) {
	resources := []domain.Resource{
		resource("r1", 8, 0, []string{"algebra"}),
		resource("r2", 9, 0, []string{"calculus"}),
		resource("r3", 7, 0, []string{"algebra", "calculus"}),
	}

	picks := SelectResources(unit("algebra", domain.CategoryFoundation, 4), resources, domain.UserConstraints{WeeklyCapacity: 10}, 5)

	require.Len(t, picks, 2)
	assert.Equal(t, "r1", picks[0].Resource.ID)
	assert.Equal(t, "r3", picks[1].Resource.ID)
}

func TestSelectResources_FreeBeatsCostlyOnZeroBudget(t *testing.T) {
	resources := []domain.Resource{
		resource("costly", 9, 80, []string{"algebra"}),
		resource("free", 8, 0, []string{"algebra"}),
	}
	constraints := domain.UserConstraints{WeeklyCapacity: 10, Budget: 0}

	picks := SelectResources(unit("algebra", domain.CategoryFoundation, 4), resources, constraints, 2)

	require.Len(t, picks, 2)
	// free: 80+10=90; costly: 90-50=40
	assert.Equal(t, "free", picks[0].Resource.ID)
	assert.Equal(t, "costly", picks[1].Resource.ID)
}

func TestSelectResources_ExpensiveButExcellentStillSurfaces(t *testing.T) {
	resources := []domain.Resource{
		resource("mediocre", 2, 0, []string{"algebra"}),
		resource("excellent", 10, 500, []string{"algebra"}),
	}
	constraints := domain.UserConstraints{WeeklyCapacity: 10, Budget: 10}

	picks := SelectResources(unit("algebra", domain.CategoryFoundation, 4), resources, constraints, 1)

	// excellent: 100-50=50; mediocre: 20+10=30. Heavy penalty, not exclusion.
	require.Len(t, picks, 1)
	assert.Equal(t, "excellent", picks[0].Resource.ID)
}

func TestSelectResources_TieBreakCostThenID(t *testing.T) {
	resources := []domain.Resource{
		resource("zzz", 5, 10, []string{"a"}),
		resource("aaa", 5, 10, []string{"a"}),
		resource("mid", 5, 5, []string{"a"}),
	}
	constraints := domain.UserConstraints{WeeklyCapacity: 10, Budget: 100}

	picks := SelectResources(unit("a", domain.CategoryCore, 4), resources, constraints, 3)

	require.Len(t, picks, 3)
	assert.Equal(t, "mid", picks[0].Resource.ID, "lower cost wins the tie")
	assert.Equal(t, "aaa", picks[1].Resource.ID, "then lexical ID")
	assert.Equal(t, "zzz", picks[2].Resource.ID)
}

func TestSelectResources_TopKLimit(t *testing.T) {
	resources := []domain.Resource{
		resource("r1", 9, 0, []string{"a"}),
		resource("r2", 8, 0, []string{"a"}),
		resource("r3", 7, 0, []string{"a"}),
	}

	picks := SelectResources(unit("a", domain.CategoryCore, 4), resources, domain.UserConstraints{WeeklyCapacity: 10}, 2)

	assert.Len(t, picks, 2)
}

func TestSelectResources_NoMatchIsEmptyNotError(t *testing.T) {
	resources := []domain.Resource{
		resource("r1", 9, 0, []string{"other"}),
	}

	picks := SelectResources(unit("a", domain.CategoryCore, 4), resources, domain.UserConstraints{WeeklyCapacity: 10}, 3)

	assert.Empty(t, picks)
}

func reasonCodes(reasons []app.PickReason) []app.PickReasonCode {
	codes := make([]app.PickReasonCode, len(reasons))
	for i, r := range reasons {
		codes[i] = r.Code
	}
	return codes
}
