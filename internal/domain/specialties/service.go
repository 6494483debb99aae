package specialties

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("specialty not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, sp Specialty) (Specialty, error) {
	sp.ID = 0
	return s.repo.Create(ctx, sp)
}

// Update falla con ErrNotFound si el ID no existe; no hay upsert.
func (s *Service) Update(ctx context.Context, sp Specialty) (Specialty, error) {
	if err := s.repo.Update(ctx, sp); err != nil {
		return Specialty{}, err
	}
	return sp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Specialty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Specialty, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByName(ctx context.Context, name string) ([]Specialty, error) {
	return s.repo.ListByName(ctx, name)
}
