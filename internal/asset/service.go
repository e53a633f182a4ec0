package asset

import (
	"context"
	"strings"

	"github.com/sewakita/sewakita-backend/internal/category"
	"github.com/sewakita/sewakita-backend/internal/organization"
)

type CreateRequest struct {
	OrganizationID string
	CategoryID     string
	Name           string
	Description    string
	Address        string
	Unit           string
	Rate           int64
}

type UpdateRequest struct {
	CategoryID  *string
	Name        *string
	Description *string
	Address     *string
	Unit        *string
	Rate        *int64
	IsActive    *bool
	PhotoFileID *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Asset, error)
	GetByID(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Asset, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	catService category.Service
	orgService organization.Service
}

func NewService(repo Repository, catService category.Service, orgService organization.Service) Service {
	return &service{
		repo:       repo,
		catService: catService,
		orgService: orgService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Asset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	unit := PricingUnit(req.Unit)
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}
	if req.Rate < 0 {
		return nil, ErrNegativeRate
	}

	if _, err := s.orgService.GetByID(ctx, req.OrganizationID); err != nil {
		return nil, ErrInvalidOrg
	}
	if _, err := s.catService.GetByID(ctx, req.CategoryID); err != nil {
		return nil, ErrInvalidCategory
	}

	a := &Asset{
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		Name:           strings.TrimSpace(req.Name),
		Unit:           unit,
		Rate:           req.Rate,
		IsActive:       true,
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		a.Description = &desc
	}
	if addr := strings.TrimSpace(req.Address); addr != "" {
		a.Address = &addr
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Asset, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Asset, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.catService.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, ErrInvalidCategory
		}
		a.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		a.Name = name
	}
	if req.Description != nil {
		if desc := strings.TrimSpace(*req.Description); desc != "" {
			a.Description = &desc
		} else {
			a.Description = nil
		}
	}
	if req.Address != nil {
		if addr := strings.TrimSpace(*req.Address); addr != "" {
			a.Address = &addr
		} else {
			a.Address = nil
		}
	}
	if req.Unit != nil {
		unit := PricingUnit(*req.Unit)
		if !unit.IsValid() {
			return nil, ErrInvalidUnit
		}
		a.Unit = unit
	}
	if req.Rate != nil {
		if *req.Rate < 0 {
			return nil, ErrNegativeRate
		}
		a.Rate = *req.Rate
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if req.PhotoFileID != nil {
		a.PhotoFileID = req.PhotoFileID
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	// Refuse to delete assets that still have non-cancelled reservations.
	busy, err := s.repo.HasActiveReservations(ctx, id)
	if err != nil {
		return err
	}
	if busy {
		return ErrHasReservations
	}

	return s.repo.Delete(ctx, id)
}
