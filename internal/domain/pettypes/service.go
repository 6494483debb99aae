package pettypes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet type not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, pt PetType) (PetType, error) {
	pt.ID = 0
	return s.repo.Create(ctx, pt)
}

// Update falla con ErrNotFound si el ID no existe; no hay upsert.
func (s *Service) Update(ctx context.Context, pt PetType) (PetType, error) {
	if err := s.repo.Update(ctx, pt); err != nil {
		return PetType{}, err
	}
	return pt, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (PetType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]PetType, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByName(ctx context.Context, name string) ([]PetType, error) {
	return s.repo.ListByName(ctx, name)
}
