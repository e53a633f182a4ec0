package reservation

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "time slot is no longer available")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast     = apperror.New(http.StatusBadRequest, "cannot create reservation in the past")
	ErrTooShort          = apperror.New(http.StatusBadRequest, "reservation must cover at least one billable hour")
	ErrAssetNotFound     = apperror.New(http.StatusNotFound, "asset not found")
	ErrAssetInactive     = apperror.New(http.StatusUnprocessableEntity, "asset is not open for reservations")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid reservation status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "status transition not allowed")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")

	// ErrAvailabilityCheck signals that the overlap query itself failed.
	// Callers must treat this as "unknown", never as "available".
	ErrAvailabilityCheck = apperror.New(http.StatusServiceUnavailable, "availability check failed, try again")
)

// PaymentStatus tracks payment evidence for a reservation.
type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentSubmitted PaymentStatus = "submitted"
	PaymentPaid      PaymentStatus = "paid"
)

// Reservation is a single booking of an asset over a half-open time
// interval [StartsAt, EndsAt). Price is a snapshot taken at admission time;
// later rate edits on the asset never change it.
type Reservation struct {
	ID               string
	AssetID          string
	AssetName        string
	UserID           string
	UserName         string
	OrganizationID   string
	OrganizationName string
	StartsAt         time.Time
	EndsAt           time.Time
	ContactName      string
	ContactPhone     string
	Price            int64
	Status           Status
	PaymentStatus    PaymentStatus
	PaymentProofID   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	UserID         string
	AssetID        string
	OrganizationID string
	Status         string
	StartsAfter    *time.Time
	EndsBefore     *time.Time

	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}
