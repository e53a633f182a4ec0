package organization

import (
	"context"
	"errors"
	"strings"
)

// CreateRequest carries the fields for creating an organization.
type CreateRequest struct {
	Name         string
	ContactEmail string
	ContactPhone string
}

// UpdateRequest defines the fields that can be updated.
type UpdateRequest struct {
	Name         *string
	ContactEmail *string
	ContactPhone *string
	IsActive     *bool
}

// Service defines business logic for organizations and their members.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Organization, error)
	GetByID(ctx context.Context, id string) (*Organization, error)
	List(ctx context.Context, filter Filter) ([]*Organization, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Organization, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, orgID, userID, role string) error
	GetMember(ctx context.Context, orgID, userID string) (*Member, error)
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error
	RemoveMember(ctx context.Context, orgID, userID string) error
	ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error)

	// IsManagerOrAbove reports whether the user holds an owner or admin role
	// in the organization. A missing membership is not an error.
	IsManagerOrAbove(ctx context.Context, orgID, userID string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new organization service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	org := &Organization{
		Name:         name,
		ContactEmail: optionalString(req.ContactEmail),
		ContactPhone: optionalString(req.ContactPhone),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Organization, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Organization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		org.Name = name
	}
	if req.ContactEmail != nil {
		org.ContactEmail = optionalString(*req.ContactEmail)
	}
	if req.ContactPhone != nil {
		org.ContactPhone = optionalString(*req.ContactPhone)
	}
	if req.IsActive != nil {
		org.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AddMember(ctx context.Context, orgID, userID, role string) error {
	if !isValidRole(role) {
		return ErrInvalidRole
	}
	if _, err := s.repo.GetByID(ctx, orgID); err != nil {
		return err
	}
	return s.repo.AddMember(ctx, orgID, userID, role)
}

func (s *service) GetMember(ctx context.Context, orgID, userID string) (*Member, error) {
	return s.repo.GetMember(ctx, orgID, userID)
}

func (s *service) UpdateMemberRole(ctx context.Context, orgID, userID, role string) error {
	if !isValidRole(role) {
		return ErrInvalidRole
	}
	return s.repo.UpdateMemberRole(ctx, orgID, userID, role)
}

func (s *service) RemoveMember(ctx context.Context, orgID, userID string) error {
	return s.repo.RemoveMember(ctx, orgID, userID)
}

func (s *service) ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error) {
	if _, err := s.repo.GetByID(ctx, orgID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListMembers(ctx, orgID, filter)
}

func (s *service) IsManagerOrAbove(ctx context.Context, orgID, userID string) (bool, error) {
	m, err := s.repo.GetMember(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.Role == RoleOwner || m.Role == RoleAdmin, nil
}

func isValidRole(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleMember
}

// optionalString returns nil for blank input so empty form fields stay NULL.
func optionalString(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
