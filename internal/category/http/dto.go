package http

import (
	"time"

	"github.com/sewakita/sewakita-backend/internal/category"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
)

// CategoryResponse is the API shape of a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryTag is a brief representation for embedding in other responses.
type CategoryTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCategoryResponse(cat *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
	}
}

// ListCategoriesRequest defines query parameters for listing categories.
type ListCategoriesRequest struct {
	request.ListParams
}

// CreateCategoryBody defines the payload for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryBody defines the payload for updating a category.
type UpdateCategoryBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
