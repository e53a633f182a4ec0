package http

import (
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/request"
	"github.com/sewakita/sewakita-backend/internal/promotion"
)

type CreatePromotionBody struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent" binding:"required,min=1,max=100"`
	ValidFrom       time.Time `json:"valid_from" binding:"required"`
	ValidUntil      time.Time `json:"valid_until" binding:"required"`
	IsActive        *bool     `json:"is_active"`
}

type UpdatePromotionBody struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DiscountPercent *int       `json:"discount_percent" binding:"omitempty,min=1,max=100"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
	IsActive        *bool      `json:"is_active"`
}

type ListPromotionsRequest struct {
	request.ListParams
}

type PromotionResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	IsActive        bool      `json:"is_active"`
	Current         bool      `json:"current"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewPromotionResponse(p *promotion.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		ValidFrom:       p.ValidFrom,
		ValidUntil:      p.ValidUntil,
		IsActive:        p.IsActive,
		Current:         p.Current(time.Now()),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
