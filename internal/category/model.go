package category

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "category not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "category name is required")
	ErrNameTaken    = apperror.New(http.StatusConflict, "category name already exists")
)

// Category classifies rentable assets (building, vehicle, equipment, ...).
type Category struct {
	ID          string // UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// Filter defines options for listing categories.
type Filter struct {
	Page     int
	PageSize int
}
