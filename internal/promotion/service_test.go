package promotion

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	seq        int
	promotions map[string]*Promotion
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{promotions: make(map[string]*Promotion)}
}

func (f *fakeRepo) Create(ctx context.Context, p *Promotion) error {
	f.seq++
	p.ID = fmt.Sprintf("promo-%d", f.seq)
	stored := *p
	f.promotions[p.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Promotion, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Promotion, int, error) {
	now := time.Now()
	var out []*Promotion
	for _, p := range f.promotions {
		if filter.ActiveOnly && !p.Current(now) {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Promotion) error {
	if _, ok := f.promotions[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	f.promotions[p.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.promotions[id]; !ok {
		return ErrNotFound
	}
	delete(f.promotions, id)
	return nil
}

func validPromotion() *Promotion {
	now := time.Now()
	return &Promotion{
		Title:           "Opening Sale",
		Description:     "20 percent off all studios",
		DiscountPercent: 20,
		ValidFrom:       now.Add(-time.Hour),
		ValidUntil:      now.Add(7 * 24 * time.Hour),
		IsActive:        true,
	}
}

func TestPromotionValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	t.Run("success", func(t *testing.T) {
		p, err := svc.Create(ctx, validPromotion())
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		p := validPromotion()
		p.Title = "  "
		_, err := svc.Create(ctx, p)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("discount out of range rejected", func(t *testing.T) {
		p := validPromotion()
		p.DiscountPercent = 0
		_, err := svc.Create(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidDiscount)

		p = validPromotion()
		p.DiscountPercent = 101
		_, err = svc.Create(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		p := validPromotion()
		p.ValidUntil = p.ValidFrom.Add(-time.Hour)
		_, err := svc.Create(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestPromotionCurrent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		mutate  func(*Promotion)
		current bool
	}{
		{"inside window", func(p *Promotion) {}, true},
		{"inactive", func(p *Promotion) { p.IsActive = false }, false},
		{"not started", func(p *Promotion) {
			p.ValidFrom = now.Add(time.Hour)
			p.ValidUntil = now.Add(2 * time.Hour)
		}, false},
		{"expired", func(p *Promotion) {
			p.ValidFrom = now.Add(-2 * time.Hour)
			p.ValidUntil = now.Add(-time.Hour)
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPromotion()
			tt.mutate(p)
			assert.Equal(t, tt.current, p.Current(now))
		})
	}
}

func TestPromotionActiveListing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	_, err := svc.Create(ctx, validPromotion())
	require.NoError(t, err)

	expired := validPromotion()
	expired.ValidFrom = time.Now().Add(-48 * time.Hour)
	expired.ValidUntil = time.Now().Add(-24 * time.Hour)
	_, err = svc.Create(ctx, expired)
	require.NoError(t, err)

	active, total, err := svc.List(ctx, Filter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, active, 1)

	_, total, err = svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
