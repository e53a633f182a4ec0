package asset

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "asset not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "asset name is required")
	ErrInvalidUnit      = apperror.New(http.StatusBadRequest, "invalid pricing unit")
	ErrNegativeRate     = apperror.New(http.StatusBadRequest, "rate must not be negative")
	ErrInvalidOrg       = apperror.New(http.StatusBadRequest, "invalid organization_id")
	ErrInvalidCategory  = apperror.New(http.StatusBadRequest, "invalid category_id")
	ErrHasReservations  = apperror.New(http.StatusConflict, "asset has non-cancelled reservations")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// PricingUnit determines how a rental period is billed.
type PricingUnit string

const (
	UnitPerHour PricingUnit = "per_hour"
	UnitPerDay  PricingUnit = "per_day"
)

// IsValid reports whether u is a recognized pricing unit.
func (u PricingUnit) IsValid() bool {
	return u == UnitPerHour || u == UnitPerDay
}

// Asset represents a rentable unit (a building, vehicle, or piece of equipment).
// Rate is in minor currency units and is snapshotted onto reservations at
// admission time, so later edits never alter historical prices.
type Asset struct {
	ID             string // UUID
	OrganizationID string
	CategoryID     string
	CategoryName   string
	Name           string
	Description    *string
	Address        *string
	Unit           PricingUnit
	Rate           int64
	IsActive       bool
	PhotoFileID    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter defines parameters for listing assets.
type Filter struct {
	OrganizationID string
	CategoryID     string
	Unit           string
	IsActive       *bool
	Keyword        string

	Page     int
	PageSize int
}
