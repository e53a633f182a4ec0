package promotion

import (
	"context"
	"strings"
)

type Service interface {
	Create(ctx context.Context, p *Promotion) (*Promotion, error)
	GetByID(ctx context.Context, id string) (*Promotion, error)
	List(ctx context.Context, filter Filter) ([]*Promotion, int, error)
	Update(ctx context.Context, p *Promotion) (*Promotion, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(p *Promotion) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if p.DiscountPercent < 1 || p.DiscountPercent > 100 {
		return ErrInvalidDiscount
	}
	if !p.ValidUntil.After(p.ValidFrom) {
		return ErrInvalidWindow
	}
	return nil
}

func (s *service) Create(ctx context.Context, p *Promotion) (*Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Promotion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Promotion, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, p *Promotion) (*Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
