package app

import (
	"fmt"
	"strings"
)

// UnknownUnitError reports a selected unit ID that is absent from the catalog.
type UnknownUnitError struct {
	UnitID string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q: not present in catalog", e.UnitID)
}

// CycleError reports a prerequisite cycle inside the selected subgraph.
// Cycle holds the unit IDs along the cycle, first repeated last.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

type PlanErrorCode string

const (
	ErrEmptySelection  PlanErrorCode = "EMPTY_SELECTION"
	ErrInvalidRequest  PlanErrorCode = "INVALID_REQUEST"
	ErrCatalogNotFound PlanErrorCode = "CATALOG_NOT_FOUND"
	ErrInternal        PlanErrorCode = "INTERNAL"
)

// PlanError is a structural planning failure. A roadmap is all-or-nothing:
// any PlanError aborts the request with no partial result.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
