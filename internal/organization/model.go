package organization

import (
	"net/http"
	"time"

	"github.com/sewakita/sewakita-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "organization not found")
	ErrNameRequired   = apperror.New(http.StatusBadRequest, "organization name is required")
	ErrAlreadyMember  = apperror.New(http.StatusConflict, "user is already a member of this organization")
	ErrMemberNotFound = apperror.New(http.StatusNotFound, "member not found")
	ErrInvalidRole    = apperror.New(http.StatusBadRequest, "invalid member role")
)

// Organization represents an asset provider (a venue owner, rental company, or brand).
type Organization struct {
	ID           string // UUID
	Name         string
	ContactEmail *string
	ContactPhone *string
	IsActive     bool
	CreatedAt    time.Time
}

// Roles matching the database enum.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Member represents a user with a role within an organization.
// Joined with the users table for display fields.
type Member struct {
	UserID      string
	Email       string
	DisplayName *string
	Role        string
}

// Filter defines options for listing organizations.
type Filter struct {
	Name     string
	IsActive *bool
	Page     int
	PageSize int
}

// MemberFilter defines options for listing members.
type MemberFilter struct {
	Page     int
	PageSize int
}
