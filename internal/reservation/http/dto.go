package http

import (
	"time"

	assetHttp "github.com/sewakita/sewakita-backend/internal/asset/http"
	orgHttp "github.com/sewakita/sewakita-backend/internal/organization/http"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
	"github.com/sewakita/sewakita-backend/internal/reservation"
	userHttp "github.com/sewakita/sewakita-backend/internal/user/http"
)

type CreateReservationBody struct {
	AssetID      string    `json:"asset_id" binding:"required,uuid"`
	StartsAt     time.Time `json:"starts_at" binding:"required"`
	EndsAt       time.Time `json:"ends_at" binding:"required"`
	ContactName  string    `json:"contact_name" binding:"required"`
	ContactPhone string    `json:"contact_phone" binding:"required"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending_payment waiting_verification confirmed cancelled"`
}

type ListReservationsRequest struct {
	request.ListParams
	AssetID        string     `form:"asset_id" binding:"omitempty,uuid"`
	UserID         string     `form:"user_id" binding:"omitempty,uuid"`
	OrganizationID string     `form:"organization_id" binding:"omitempty,uuid"`
	Status         string     `form:"status" binding:"omitempty,oneof=pending_payment waiting_verification confirmed cancelled"`
	StartsAfter    *time.Time `form:"starts_after" time_format:"2006-01-02T15:04:05Z07:00"`
	EndsBefore     *time.Time `form:"ends_before" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy         string     `form:"sort_by" binding:"omitempty,oneof=starts_at ends_at created_at status"`
}

// Validate performs custom validation for ListReservationsRequest.
func (r *ListReservationsRequest) Validate() error {
	if r.StartsAfter != nil && r.EndsBefore != nil {
		if r.StartsAfter.After(*r.EndsBefore) {
			return reservation.ErrInvalidTimeRange
		}
	}
	return nil
}

type AvailabilityRequest struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type AvailabilityResponse struct {
	AssetID   string    `json:"asset_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type ReservationResponse struct {
	ID             string                  `json:"id"`
	Asset          assetHttp.AssetTag      `json:"asset"`
	User           userHttp.UserTag        `json:"user"`
	Organization   orgHttp.OrganizationTag `json:"organization"`
	StartsAt       time.Time               `json:"starts_at"`
	EndsAt         time.Time               `json:"ends_at"`
	ContactName    string                  `json:"contact_name"`
	ContactPhone   string                  `json:"contact_phone"`
	Price          int64                   `json:"price"`
	Status         string                  `json:"status"`
	PaymentStatus  string                  `json:"payment_status"`
	PaymentProofID *string                 `json:"payment_proof_id,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func NewReservationResponse(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             res.ID,
		Asset:          assetHttp.AssetTag{ID: res.AssetID, Name: res.AssetName},
		User:           userHttp.UserTag{ID: res.UserID, Name: res.UserName},
		Organization:   orgHttp.OrganizationTag{ID: res.OrganizationID, Name: res.OrganizationName},
		StartsAt:       res.StartsAt,
		EndsAt:         res.EndsAt,
		ContactName:    res.ContactName,
		ContactPhone:   res.ContactPhone,
		Price:          res.Price,
		Status:         string(res.Status),
		PaymentStatus:  string(res.PaymentStatus),
		PaymentProofID: res.PaymentProofID,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}
