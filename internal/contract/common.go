package contract

import "github.com/dpetrov/lodestar/internal/app"

type PlanWarningCode = app.PlanWarningCode

const (
	WarnOverCapacity PlanWarningCode = app.WarnOverCapacity
	WarnNoResources  PlanWarningCode = app.WarnNoResources
)

type PlanWarning = app.PlanWarning

type PickReasonCode = app.PickReasonCode

const (
	ReasonQualityBase  PickReasonCode = app.ReasonQualityBase
	ReasonOverBudget   PickReasonCode = app.ReasonOverBudget
	ReasonFreeResource PickReasonCode = app.ReasonFreeResource
	ReasonFormatMatch  PickReasonCode = app.ReasonFormatMatch
)

type PickReason = app.PickReason
