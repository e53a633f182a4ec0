package promotion

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "promotion not found")
	ErrTitleRequired   = apperror.New(http.StatusBadRequest, "title is required")
	ErrInvalidDiscount = apperror.New(http.StatusBadRequest, "discount must be between 1 and 100")
	ErrInvalidWindow   = apperror.New(http.StatusBadRequest, "valid_until must be after valid_from")
)

// Promotion is a marketing campaign with a validity window. Discounts are
// informational for the storefront; they do not change stored quotes.
type Promotion struct {
	ID              string
	Title           string
	Description     string
	DiscountPercent int
	ValidFrom       time.Time
	ValidUntil      time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Current reports whether the promotion is active and inside its window.
func (p *Promotion) Current(now time.Time) bool {
	return p.IsActive && !now.Before(p.ValidFrom) && now.Before(p.ValidUntil)
}

type Filter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}
