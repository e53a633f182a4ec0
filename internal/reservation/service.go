package reservation

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sewakita/sewakita-backend/internal/asset"
	"github.com/sewakita/sewakita-backend/internal/notify"
	"github.com/sewakita/sewakita-backend/internal/organization"
)

type CreateRequest struct {
	UserID       string
	AssetID      string
	StartsAt     time.Time
	EndsAt       time.Time
	ContactName  string
	ContactPhone string
}

type Service interface {
	// Create admits a reservation request: it validates the time range,
	// snapshots the asset's current rate into a price quote, checks the
	// slot, and persists. The storage-side overlap guard is the final
	// arbiter, so two concurrent requests for the same slot cannot both
	// succeed.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// CheckAvailability reports whether [start, end) is free for the asset.
	// A failed check is an error, never "available".
	CheckAvailability(ctx context.Context, assetID string, start, end time.Time) (bool, error)

	UpdateStatus(ctx context.Context, id string, newStatus Status, actorID string, isSysAdmin bool) (*Reservation, error)
	AttachPaymentProof(ctx context.Context, id, fileID, actorID string) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	assetService asset.Service
	orgService   organization.Service
	notifier     notify.Notifier
}

func NewService(repo Repository, assetService asset.Service, orgService organization.Service, notifier notify.Notifier) Service {
	return &service{
		repo:         repo,
		assetService: assetService,
		orgService:   orgService,
		notifier:     notifier,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartsAt.Before(time.Now()) {
		return nil, ErrStartTimePast
	}

	a, err := s.assetService.GetByID(ctx, req.AssetID)
	if err != nil {
		if err == asset.ErrNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	if !a.IsActive {
		return nil, ErrAssetInactive
	}

	// Hourly assets bill whole elapsed hours, so anything under an hour
	// would price to zero. Reject it up front.
	if a.Unit == asset.UnitPerHour && req.EndsAt.Sub(req.StartsAt) < time.Hour {
		return nil, ErrTooShort
	}

	overlap, err := s.repo.HasOverlap(ctx, req.AssetID, req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, ErrAvailabilityCheck
	}
	if overlap {
		return nil, ErrTimeConflict
	}

	res := &Reservation{
		AssetID:        req.AssetID,
		AssetName:      a.Name,
		UserID:         req.UserID,
		OrganizationID: a.OrganizationID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		ContactName:    strings.TrimSpace(req.ContactName),
		ContactPhone:   strings.TrimSpace(req.ContactPhone),
		Price:          CalculatePrice(a.Unit, req.StartsAt, req.EndsAt, a.Rate),
		Status:         StatusPendingPayment,
		PaymentStatus:  PaymentUnpaid,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, res)
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) CheckAvailability(ctx context.Context, assetID string, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidTimeRange
	}

	if _, err := s.assetService.GetByID(ctx, assetID); err != nil {
		if err == asset.ErrNotFound {
			return false, ErrAssetNotFound
		}
		return false, err
	}

	overlap, err := s.repo.HasOverlap(ctx, assetID, start, end)
	if err != nil {
		return false, ErrAvailabilityCheck
	}
	return !overlap, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, newStatus Status, actorID string, isSysAdmin bool) (*Reservation, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canManage(ctx, res, actorID, isSysAdmin)
	if err != nil {
		return nil, err
	}
	if !allowed {
		// The booking owner may cancel their own reservation; every other
		// transition needs organization management rights.
		if res.UserID != actorID || newStatus != StatusCancelled {
			return nil, ErrPermissionDenied
		}
	}

	if !res.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	var payment *PaymentStatus
	if newStatus == StatusConfirmed {
		paid := PaymentPaid
		payment = &paid
	}

	if err := s.repo.UpdateStatus(ctx, id, res.Status, newStatus, payment); err != nil {
		return nil, err
	}

	res.Status = newStatus
	if payment != nil {
		res.PaymentStatus = *payment
	}

	s.publishStatusChanged(ctx, res)
	return res, nil
}

func (s *service) AttachPaymentProof(ctx context.Context, id, fileID, actorID string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.UserID != actorID {
		return nil, ErrPermissionDenied
	}

	if err := s.repo.AttachPaymentProof(ctx, id, fileID); err != nil {
		return nil, err
	}

	res.Status = StatusWaitingVerification
	res.PaymentStatus = PaymentSubmitted
	res.PaymentProofID = &fileID

	s.publishStatusChanged(ctx, res)
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) canManage(ctx context.Context, res *Reservation, actorID string, isSysAdmin bool) (bool, error) {
	if isSysAdmin {
		return true, nil
	}
	return s.orgService.IsManagerOrAbove(ctx, res.OrganizationID, actorID)
}

// Event publication is best effort: a broker outage must not fail the
// reservation itself.

func (s *service) publishCreated(ctx context.Context, res *Reservation) {
	if err := s.notifier.ReservationCreated(ctx, eventFrom(res)); err != nil {
		log.Printf("warning: failed to publish reservation created event for %s: %v", res.ID, err)
	}
}

func (s *service) publishStatusChanged(ctx context.Context, res *Reservation) {
	if err := s.notifier.ReservationStatusChanged(ctx, eventFrom(res)); err != nil {
		log.Printf("warning: failed to publish reservation status event for %s: %v", res.ID, err)
	}
}

func eventFrom(res *Reservation) notify.ReservationEvent {
	return notify.ReservationEvent{
		ReservationID: res.ID,
		AssetID:       res.AssetID,
		UserID:        res.UserID,
		Status:        string(res.Status),
		Price:         res.Price,
		StartsAt:      res.StartsAt.Format(time.RFC3339),
		EndsAt:        res.EndsAt.Format(time.RFC3339),
	}
}
