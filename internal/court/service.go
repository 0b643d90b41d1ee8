package court

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
	Available   bool
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic for court management.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context) ([]*Court, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id string) error
	AttachPhoto(ctx context.Context, id, photoPath string) (*Court, error)
}

type service struct {
	repo Repository
}

// NewService creates a court Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	crt := &Court{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Available:   req.Available,
	}

	if err := s.repo.Create(ctx, crt); err != nil {
		return nil, err
	}
	return crt, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Court, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Court, error) {
	crt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		crt.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		crt.Description = *req.Description
	}
	if req.Available != nil {
		crt.Available = *req.Available
	}

	if err := s.repo.Update(ctx, crt); err != nil {
		return nil, err
	}
	return crt, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AttachPhoto records the storage path of the court's photo.
func (s *service) AttachPhoto(ctx context.Context, id, photoPath string) (*Court, error) {
	crt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	crt.PhotoPath = &photoPath

	if err := s.repo.Update(ctx, crt); err != nil {
		return nil, err
	}
	return crt, nil
}
