package planner

import (
	"fmt"
	"sort"

	"github.com/dpetrov/lodestar/internal/app"
	"github.com/dpetrov/lodestar/internal/domain"
)

// Scoring constants for resource ranking. An over-budget resource is heavily
// penalized rather than excluded outright: an excellent but expensive pick
// may still surface.
const (
	qualityWeight     = 10.0
	overBudgetPenalty = -50.0
	freeBonus         = 10.0
	formatMatchBonus  = 15.0
)

// ResourceScoreInput bundles one candidate with the constraints it is
// scored against.
type ResourceScoreInput struct {
	Resource         domain.Resource
	Budget           float64
	FormatPreference string
}

// ScoredResource is a ranked candidate with its scoring explanation.
type ScoredResource struct {
	Resource domain.Resource
	Score    float64
	Reasons  []app.PickReason
}

// ScoreResource applies every scoring factor to a single candidate.
func ScoreResource(input ResourceScoreInput) ScoredResource {
	result := ScoredResource{Resource: input.Resource}

	factors := []func(ResourceScoreInput) (float64, *app.PickReason){
		scoreQuality,
		scoreBudget,
		scoreFree,
		scoreFormat,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

// SelectResources ranks the catalog resources that satisfy unit against the
// user constraints and returns the topK best. An empty result is not an
// error; the assembler tolerates units without resources.
func SelectResources(unit domain.LearningUnit, resources []domain.Resource, constraints domain.UserConstraints, topK int) []ScoredResource {
	if topK <= 0 {
		topK = 3
	}

	var scored []ScoredResource
	for _, r := range resources {
		if !r.Satisfies(unit.ID) {
			continue
		}
		scored = append(scored, ScoreResource(ResourceScoreInput{
			Resource:         r,
			Budget:           constraints.Budget,
			FormatPreference: constraints.FormatPreference,
		}))
	}

	sortScored(scored)
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// sortScored orders candidates by the deterministic canonical rules:
// 1. Score: higher first
// 2. Cost: lower first
// 3. Resource ID: lexical ascending
func sortScored(scored []ScoredResource) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Resource.Cost != b.Resource.Cost {
			return a.Resource.Cost < b.Resource.Cost
		}
		return a.Resource.ID < b.Resource.ID
	})
}

func scoreQuality(input ResourceScoreInput) (float64, *app.PickReason) {
	delta := input.Resource.QualityScore * qualityWeight
	return delta, &app.PickReason{
		Code:        app.ReasonQualityBase,
		Message:     fmt.Sprintf("Quality score %.1f/10", input.Resource.QualityScore),
		WeightDelta: delta,
	}
}

func scoreBudget(input ResourceScoreInput) (float64, *app.PickReason) {
	if input.Resource.Cost <= input.Budget {
		return 0, nil
	}
	return overBudgetPenalty, &app.PickReason{
		Code:        app.ReasonOverBudget,
		Message:     fmt.Sprintf("Costs %.2f, above the %.2f budget", input.Resource.Cost, input.Budget),
		WeightDelta: overBudgetPenalty,
	}
}

func scoreFree(input ResourceScoreInput) (float64, *app.PickReason) {
	if input.Resource.Cost != 0 {
		return 0, nil
	}
	return freeBonus, &app.PickReason{
		Code:        app.ReasonFreeResource,
		Message:     "Free resource",
		WeightDelta: freeBonus,
	}
}

func scoreFormat(input ResourceScoreInput) (float64, *app.PickReason) {
	if input.FormatPreference == "" || !input.Resource.HasTag(input.FormatPreference) {
		return 0, nil
	}
	return formatMatchBonus, &app.PickReason{
		Code:        app.ReasonFormatMatch,
		Message:     fmt.Sprintf("Matches preferred format %q", input.FormatPreference),
		WeightDelta: formatMatchBonus,
	}
}
