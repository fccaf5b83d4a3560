package app

import "fmt"

type PlanWarningCode string

const (
	WarnOverCapacity PlanWarningCode = "OVER_CAPACITY"
	WarnNoResources  PlanWarningCode = "NO_RESOURCES"
)

// PlanWarning is a non-fatal planning note attached to the response for the
// caller to display. Warnings never abort a plan.
type PlanWarning struct {
	Code        PlanWarningCode `json:"code"`
	UnitID      string          `json:"unit_id,omitempty"`
	PeriodIndex int             `json:"period_index,omitempty"`
	Message     string          `json:"message"`
}

// NewOverCapacityWarning flags a unit whose cost alone exceeds per-period
// capacity and was therefore placed alone in its own period.
func NewOverCapacityWarning(unitID string, periodIndex int, cost, capacity float64) PlanWarning {
	return PlanWarning{
		Code:        WarnOverCapacity,
		UnitID:      unitID,
		PeriodIndex: periodIndex,
		Message:     fmt.Sprintf("Unit %q costs %.1fh, above the %.1fh period capacity; scheduled alone", unitID, cost, capacity),
	}
}

// NewNoResourcesWarning notes that no catalog resource matched a unit.
func NewNoResourcesWarning(unitID string) PlanWarning {
	return PlanWarning{
		Code:    WarnNoResources,
		UnitID:  unitID,
		Message: fmt.Sprintf("No learning resources found for unit %q", unitID),
	}
}

type PickReasonCode string

const (
	ReasonQualityBase  PickReasonCode = "QUALITY_BASE"
	ReasonOverBudget   PickReasonCode = "OVER_BUDGET"
	ReasonFreeResource PickReasonCode = "FREE_RESOURCE"
	ReasonFormatMatch  PickReasonCode = "FORMAT_MATCH"
)

// PickReason explains one scoring factor applied to a resource candidate.
type PickReason struct {
	Code        PickReasonCode `json:"code"`
	Message     string         `json:"message"`
	WeightDelta float64        `json:"weight_delta"`
}
