package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sewakita/sewakita-backend/internal/asset"
)

func TestCalculatePricePerHour(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		rate     int64
		want     int64
	}{
		{"exactly one hour", time.Hour, 10000, 10000},
		{"two hours", 2 * time.Hour, 10000, 20000},
		{"two hours at 50000", 2 * time.Hour, 50000, 100000},
		{"partial hours round down", 2*time.Hour + 59*time.Minute, 10000, 20000},
		{"just under an hour", 59 * time.Minute, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(asset.UnitPerHour, base, base.Add(tt.duration), tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePricePerDay(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		rate     int64
		want     int64
	}{
		{"three hours still bills one day", 3 * time.Hour, 80000, 80000},
		{"twenty three hours bills one day", 23 * time.Hour, 80000, 80000},
		{"exactly one day", 24 * time.Hour, 80000, 80000},
		{"twenty five hours bills two days", 25 * time.Hour, 80000, 160000},
		{"three full days", 72 * time.Hour, 80000, 240000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(asset.UnitPerDay, base, base.Add(tt.duration), tt.rate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePriceEdgeCases(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("zero duration", func(t *testing.T) {
		assert.Zero(t, CalculatePrice(asset.UnitPerHour, base, base, 10000))
	})

	t.Run("end before start", func(t *testing.T) {
		assert.Zero(t, CalculatePrice(asset.UnitPerDay, base, base.Add(-time.Hour), 10000))
	})

	t.Run("unknown unit", func(t *testing.T) {
		assert.Zero(t, CalculatePrice(asset.PricingUnit("per_week"), base, base.Add(time.Hour), 10000))
	})

	t.Run("deterministic for equal inputs", func(t *testing.T) {
		first := CalculatePrice(asset.UnitPerHour, base, base.Add(5*time.Hour), 12345)
		second := CalculatePrice(asset.UnitPerHour, base, base.Add(5*time.Hour), 12345)
		assert.Equal(t, first, second)
	})
}
