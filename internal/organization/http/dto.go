package http

import (
	"time"

	"github.com/sewakita/sewakita-backend/internal/organization"
	"github.com/sewakita/sewakita-backend/internal/pkg/request"
)

// OrganizationResponse is the API shape of an organization.
type OrganizationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrganizationTag is a brief representation for embedding in other responses.
type OrganizationTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewOrganizationResponse(org *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		ContactEmail: org.ContactEmail,
		ContactPhone: org.ContactPhone,
		IsActive:     org.IsActive,
		CreatedAt:    org.CreatedAt,
	}
}

// ListOrganizationsRequest defines query parameters for listing organizations.
type ListOrganizationsRequest struct {
	request.ListParams
	Name     string `form:"name"`
	IsActive *bool  `form:"is_active"`
}

// CreateOrganizationBody defines the payload for creating an organization.
type CreateOrganizationBody struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

// UpdateOrganizationBody defines the payload for updating an organization.
type UpdateOrganizationBody struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	IsActive     *bool   `json:"is_active"`
}

// AddMemberBody defines the payload for adding a member.
type AddMemberBody struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=owner admin member"`
}

// UpdateMemberBody defines the payload for changing a member's role.
type UpdateMemberBody struct {
	Role string `json:"role" binding:"required,oneof=owner admin member"`
}

// MemberResponse is the API shape of an organization member.
type MemberResponse struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name"`
	Role        string  `json:"role"`
}

func NewMemberResponse(m *organization.Member) MemberResponse {
	return MemberResponse{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        m.Role,
	}
}
