package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewakita/sewakita-backend/internal/asset"
	"github.com/sewakita/sewakita-backend/internal/notify"
	"github.com/sewakita/sewakita-backend/internal/organization"
)

// fakeRepo is an in-memory Repository. Create enforces the same overlap
// rule the storage constraint does, under a mutex, so races behave like
// the real table.
type fakeRepo struct {
	mu           sync.Mutex
	seq          int
	reservations map[string]*Reservation

	overlapErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reservations: make(map[string]*Reservation)}
}

func (f *fakeRepo) overlapsLocked(assetID string, start, end time.Time) bool {
	for _, r := range f.reservations {
		if r.AssetID != assetID || r.Status == StatusCancelled {
			continue
		}
		if r.StartsAt.Before(end) && r.EndsAt.After(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(ctx context.Context, res *Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overlapsLocked(res.AssetID, res.StartsAt, res.EndsAt) {
		return ErrTimeConflict
	}

	f.seq++
	res.ID = fmt.Sprintf("res-%d", f.seq)
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt

	stored := *res
	f.reservations[res.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*Reservation
	for _, r := range f.reservations {
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		if filter.AssetID != "" && r.AssetID != filter.AssetID {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(f.reservations, id)
	return nil
}

func (f *fakeRepo) HasOverlap(ctx context.Context, assetID string, start, end time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overlapErr != nil {
		return false, f.overlapErr
	}
	return f.overlapsLocked(assetID, start, end), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, from, to Status, payment *PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reservations[id]
	if !ok {
		return ErrNotFound
	}
	if r.Status != from {
		return ErrInvalidTransition
	}
	r.Status = to
	if payment != nil {
		r.PaymentStatus = *payment
	}
	return nil
}

func (f *fakeRepo) AttachPaymentProof(ctx context.Context, id, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reservations[id]
	if !ok {
		return ErrNotFound
	}
	if r.Status != StatusPendingPayment {
		return ErrInvalidTransition
	}
	r.Status = StatusWaitingVerification
	r.PaymentStatus = PaymentSubmitted
	r.PaymentProofID = &fileID
	return nil
}

// fakeAssetService serves assets from a map. Unused methods come from the
// embedded nil interface and panic if reached.
type fakeAssetService struct {
	asset.Service
	assets map[string]*asset.Asset
}

func (f *fakeAssetService) GetByID(ctx context.Context, id string) (*asset.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, asset.ErrNotFound
	}
	return a, nil
}

type fakeOrgService struct {
	organization.Service
	managers map[string]bool // "orgID/userID" -> manager
}

func (f *fakeOrgService) IsManagerOrAbove(ctx context.Context, orgID, userID string) (bool, error) {
	return f.managers[orgID+"/"+userID], nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	created []notify.ReservationEvent
	changed []notify.ReservationEvent
}

func (n *recordingNotifier) ReservationCreated(ctx context.Context, e notify.ReservationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, e)
	return nil
}

func (n *recordingNotifier) ReservationStatusChanged(ctx context.Context, e notify.ReservationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, e)
	return nil
}

const (
	testAssetHourly = "11111111-1111-1111-1111-111111111111"
	testAssetDaily  = "22222222-2222-2222-2222-222222222222"
	testOrgID       = "33333333-3333-3333-3333-333333333333"
	testUserID      = "44444444-4444-4444-4444-444444444444"
	testManagerID   = "55555555-5555-5555-5555-555555555555"
)

func newTestService(t *testing.T) (Service, *fakeRepo, *recordingNotifier) {
	t.Helper()

	repo := newFakeRepo()
	assets := &fakeAssetService{assets: map[string]*asset.Asset{
		testAssetHourly: {
			ID:             testAssetHourly,
			OrganizationID: testOrgID,
			Name:           "Studio A",
			Unit:           asset.UnitPerHour,
			Rate:           50000,
			IsActive:       true,
		},
		testAssetDaily: {
			ID:             testAssetDaily,
			OrganizationID: testOrgID,
			Name:           "Van",
			Unit:           asset.UnitPerDay,
			Rate:           80000,
			IsActive:       true,
		},
	}}
	orgs := &fakeOrgService{managers: map[string]bool{
		testOrgID + "/" + testManagerID: true,
	}}
	notifier := &recordingNotifier{}

	return NewService(repo, assets, orgs, notifier), repo, notifier
}

func futureSlot(hours int) (time.Time, time.Time) {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return start, start.Add(time.Duration(hours) * time.Hour)
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success snapshots price and starts pending payment", func(t *testing.T) {
		svc, _, notifier := newTestService(t)
		start, end := futureSlot(2)

		res, err := svc.Create(ctx, CreateRequest{
			UserID:       testUserID,
			AssetID:      testAssetHourly,
			StartsAt:     start,
			EndsAt:       end,
			ContactName:  "Budi",
			ContactPhone: "0812000111",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.Equal(t, int64(100000), res.Price)
		assert.Equal(t, StatusPendingPayment, res.Status)
		assert.Equal(t, PaymentUnpaid, res.PaymentStatus)
		assert.Equal(t, testOrgID, res.OrganizationID)

		require.Len(t, notifier.created, 1)
		assert.Equal(t, res.ID, notifier.created[0].ReservationID)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, _ := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  testAssetHourly,
			StartsAt: start,
			EndsAt:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start in the past rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start := time.Now().Add(-2 * time.Hour)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  testAssetHourly,
			StartsAt: start,
			EndsAt:   start.Add(3 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("unknown asset rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  "99999999-9999-9999-9999-999999999999",
			StartsAt: start,
			EndsAt:   end,
		})
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("inactive asset rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		inactive := "66666666-6666-6666-6666-666666666666"
		svcImpl := svc.(*service)
		svcImpl.assetService.(*fakeAssetService).assets[inactive] = &asset.Asset{
			ID:             inactive,
			OrganizationID: testOrgID,
			Unit:           asset.UnitPerHour,
			Rate:           10000,
			IsActive:       false,
		}

		_, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  inactive,
			StartsAt: start,
			EndsAt:   end,
		})
		assert.ErrorIs(t, err, ErrAssetInactive)
	})

	t.Run("sub hour booking on hourly asset rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, _ := futureSlot(1)

		_, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  testAssetHourly,
			StartsAt: start,
			EndsAt:   start.Add(30 * time.Minute),
		})
		assert.ErrorIs(t, err, ErrTooShort)
	})

	t.Run("sub day booking on daily asset bills one day", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, _ := futureSlot(1)

		res, err := svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  testAssetDaily,
			StartsAt: start,
			EndsAt:   start.Add(3 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(80000), res.Price)
	})

	t.Run("overlapping slot rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID:   testUserID,
			AssetID:  testAssetHourly,
			StartsAt: start.Add(time.Hour),
			EndsAt:   end.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("back to back slots both admitted", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: end, EndsAt: end.Add(time.Hour),
		})
		assert.NoError(t, err)
	})

	t.Run("availability check failure is an error not a pass", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.overlapErr = errors.New("connection reset")
		start, end := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		assert.ErrorIs(t, err, ErrAvailabilityCheck)
	})

	t.Run("cancelled reservation frees its slot", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		first, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, first.ID, StatusCancelled, testUserID, false)
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		assert.NoError(t, err)
	})
}

func TestCreateReservationConcurrentAdmission(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	start, end := futureSlot(2)

	const attempts = 16

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, CreateRequest{
				UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrTimeConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one admission must win")
	assert.Equal(t, attempts-1, conflicted)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("free slot reports available", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		available, err := svc.CheckAvailability(ctx, testAssetHourly, start, end)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("taken slot reports unavailable", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		available, err := svc.CheckAvailability(ctx, testAssetHourly, start.Add(time.Minute), start.Add(3*time.Minute))
		require.NoError(t, err)
		assert.False(t, available)

		// Touching boundaries do not overlap.
		available, err = svc.CheckAvailability(ctx, testAssetHourly, end, end.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("check failure surfaces as error", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.overlapErr = errors.New("timeout")
		start, end := futureSlot(2)

		_, err := svc.CheckAvailability(ctx, testAssetHourly, start, end)
		assert.ErrorIs(t, err, ErrAvailabilityCheck)
	})

	t.Run("unknown asset rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		_, err := svc.CheckAvailability(ctx, "99999999-9999-9999-9999-999999999999", start, end)
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc Service) *Reservation {
		t.Helper()
		start, end := futureSlot(2)
		res, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)
		return res
	}

	t.Run("owner may cancel", func(t *testing.T) {
		svc, _, notifier := newTestService(t)
		res := create(t, svc)

		updated, err := svc.UpdateStatus(ctx, res.ID, StatusCancelled, testUserID, false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)
		assert.NotEmpty(t, notifier.changed)
	})

	t.Run("owner may not verify own payment", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, StatusWaitingVerification, testUserID, false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("stranger may not touch the reservation", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, StatusCancelled, "77777777-7777-7777-7777-777777777777", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("manager confirms through verification and payment becomes paid", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, StatusWaitingVerification, testManagerID, false)
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(ctx, res.ID, StatusConfirmed, testManagerID, false)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, updated.Status)
		assert.Equal(t, PaymentPaid, updated.PaymentStatus)

		stored, err := repo.GetByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, stored.PaymentStatus)
	})

	t.Run("illegal transition leaves status unchanged", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, StatusConfirmed, testManagerID, false)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		stored, err := repo.GetByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusPendingPayment, stored.Status)
	})

	t.Run("cancelled is terminal even for system admin", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, StatusCancelled, testUserID, false)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, res.ID, StatusConfirmed, testManagerID, true)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		res := create(t, svc)

		_, err := svc.UpdateStatus(ctx, res.ID, Status("archived"), testManagerID, false)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestAttachPaymentProof(t *testing.T) {
	ctx := context.Background()

	t.Run("owner attaches proof and moves to verification", func(t *testing.T) {
		svc, _, notifier := newTestService(t)
		start, end := futureSlot(2)

		res, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		updated, err := svc.AttachPaymentProof(ctx, res.ID, "file-1", testUserID)
		require.NoError(t, err)
		assert.Equal(t, StatusWaitingVerification, updated.Status)
		assert.Equal(t, PaymentSubmitted, updated.PaymentStatus)
		require.NotNil(t, updated.PaymentProofID)
		assert.Equal(t, "file-1", *updated.PaymentProofID)
		assert.NotEmpty(t, notifier.changed)
	})

	t.Run("only the owner may attach proof", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		res, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		_, err = svc.AttachPaymentProof(ctx, res.ID, "file-1", testManagerID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("proof rejected once past pending payment", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		start, end := futureSlot(2)

		res, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, AssetID: testAssetHourly, StartsAt: start, EndsAt: end,
		})
		require.NoError(t, err)

		_, err = svc.AttachPaymentProof(ctx, res.ID, "file-1", testUserID)
		require.NoError(t, err)

		_, err = svc.AttachPaymentProof(ctx, res.ID, "file-2", testUserID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
