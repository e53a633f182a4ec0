package asset

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewakita/sewakita-backend/internal/category"
	"github.com/sewakita/sewakita-backend/internal/organization"
)

type fakeRepo struct {
	seq    int
	assets map[string]*Asset
	busy   map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		assets: make(map[string]*Asset),
		busy:   make(map[string]bool),
	}
}

func (f *fakeRepo) Create(ctx context.Context, a *Asset) error {
	f.seq++
	a.ID = fmt.Sprintf("asset-%d", f.seq)
	stored := *a
	f.assets[a.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Asset, int, error) {
	var out []*Asset
	for _, a := range f.assets {
		copied := *a
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, a *Asset) error {
	if _, ok := f.assets[a.ID]; !ok {
		return ErrNotFound
	}
	stored := *a
	f.assets[a.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.assets[id]; !ok {
		return ErrNotFound
	}
	delete(f.assets, id)
	return nil
}

func (f *fakeRepo) HasActiveReservations(ctx context.Context, id string) (bool, error) {
	return f.busy[id], nil
}

type fakeCategoryService struct {
	category.Service
	ids map[string]bool
}

func (f *fakeCategoryService) GetByID(ctx context.Context, id string) (*category.Category, error) {
	if !f.ids[id] {
		return nil, category.ErrNotFound
	}
	return &category.Category{ID: id, Name: "Studio"}, nil
}

type fakeOrgService struct {
	organization.Service
	ids map[string]bool
}

func (f *fakeOrgService) GetByID(ctx context.Context, id string) (*organization.Organization, error) {
	if !f.ids[id] {
		return nil, organization.ErrNotFound
	}
	return &organization.Organization{ID: id, Name: "Acme"}, nil
}

const (
	knownOrg = "org-1"
	knownCat = "cat-1"
)

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewService(
		repo,
		&fakeCategoryService{ids: map[string]bool{knownCat: true}},
		&fakeOrgService{ids: map[string]bool{knownOrg: true}},
	)
	return svc, repo
}

func validCreate() CreateRequest {
	return CreateRequest{
		OrganizationID: knownOrg,
		CategoryID:     knownCat,
		Name:           "Studio A",
		Unit:           "per_hour",
		Rate:           50000,
	}
}

func TestAssetCreateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := newTestService()
		a, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.True(t, a.IsActive)
		assert.Equal(t, UnitPerHour, a.Unit)
	})

	t.Run("zero rate is allowed", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Rate = 0

		a, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Zero(t, a.Rate)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Name = "   "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown unit rejected", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Unit = "per_week"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidUnit)
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Rate = -1
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNegativeRate)
	})

	t.Run("unknown organization rejected", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.OrganizationID = "org-missing"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidOrg)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.CategoryID = "cat-missing"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestAssetUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rate change does not touch other fields", func(t *testing.T) {
		svc, _ := newTestService()
		a, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		newRate := int64(75000)
		updated, err := svc.Update(ctx, a.ID, UpdateRequest{Rate: &newRate})
		require.NoError(t, err)
		assert.Equal(t, newRate, updated.Rate)
		assert.Equal(t, a.Name, updated.Name)
		assert.Equal(t, a.Unit, updated.Unit)
	})

	t.Run("invalid unit rejected", func(t *testing.T) {
		svc, _ := newTestService()
		a, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		bad := "hourly"
		_, err = svc.Update(ctx, a.ID, UpdateRequest{Unit: &bad})
		assert.ErrorIs(t, err, ErrInvalidUnit)
	})
}

func TestAssetDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("free asset deleted", func(t *testing.T) {
		svc, _ := newTestService()
		a, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, a.ID))
		_, err = svc.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("asset with live reservations refused", func(t *testing.T) {
		svc, repo := newTestService()
		a, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		repo.busy[a.ID] = true
		err = svc.Delete(ctx, a.ID)
		assert.ErrorIs(t, err, ErrHasReservations)

		_, err = svc.GetByID(ctx, a.ID)
		assert.NoError(t, err)
	})
}
