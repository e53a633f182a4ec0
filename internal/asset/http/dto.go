package http

import (
	"time"

	"github.com/sewakita/sewakita-backend/internal/asset"
	catHttp "github.com/sewakita/sewakita-backend/internal/category/http"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
)

// AssetResponse is the API shape of a rentable asset.
type AssetResponse struct {
	ID             string              `json:"id"`
	OrganizationID string              `json:"organization_id"`
	Category       catHttp.CategoryTag `json:"category"`
	Name           string              `json:"name"`
	Description    *string             `json:"description"`
	Address        *string             `json:"address"`
	Unit           string              `json:"unit"`
	Rate           int64               `json:"rate"`
	IsActive       bool                `json:"is_active"`
	PhotoFileID    *string             `json:"photo_file_id"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// AssetTag is a brief representation for embedding in other responses.
type AssetTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewAssetResponse(a *asset.Asset) AssetResponse {
	return AssetResponse{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		Category:       catHttp.CategoryTag{ID: a.CategoryID, Name: a.CategoryName},
		Name:           a.Name,
		Description:    a.Description,
		Address:        a.Address,
		Unit:           string(a.Unit),
		Rate:           a.Rate,
		IsActive:       a.IsActive,
		PhotoFileID:    a.PhotoFileID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ListAssetsRequest defines query parameters for listing assets.
type ListAssetsRequest struct {
	request.ListParams
	OrganizationID string `form:"organization_id" binding:"omitempty,uuid"`
	CategoryID     string `form:"category_id" binding:"omitempty,uuid"`
	Unit           string `form:"unit" binding:"omitempty,oneof=per_hour per_day"`
	IsActive       *bool  `form:"is_active"`
	Keyword        string `form:"keyword"`
}

// CreateAssetBody defines the payload for creating an asset.
type CreateAssetBody struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	CategoryID     string `json:"category_id" binding:"required,uuid"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	Unit           string `json:"unit" binding:"required,oneof=per_hour per_day"`
	Rate           int64  `json:"rate" binding:"min=0"`
}

// UpdateAssetBody defines the payload for updating an asset.
type UpdateAssetBody struct {
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Unit        *string `json:"unit" binding:"omitempty,oneof=per_hour per_day"`
	Rate        *int64  `json:"rate" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
	PhotoFileID *string `json:"photo_file_id" binding:"omitempty,uuid"`
}
