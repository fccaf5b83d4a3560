package contract

import "github.com/dpetrov/lodestar/internal/app"

type PlanRequest = app.PlanRequest

var NewPlanRequest = app.NewPlanRequest

type PlanResponse = app.PlanResponse

type ResourcePick = app.ResourcePick

type ImportResult = app.ImportResult

type PlanErrorCode = app.PlanErrorCode

const (
	ErrEmptySelection  PlanErrorCode = app.ErrEmptySelection
	ErrInvalidRequest  PlanErrorCode = app.ErrInvalidRequest
	ErrCatalogNotFound PlanErrorCode = app.ErrCatalogNotFound
	ErrInternal        PlanErrorCode = app.ErrInternal
)

type PlanError = app.PlanError

type UnknownUnitError = app.UnknownUnitError

type CycleError = app.CycleError
