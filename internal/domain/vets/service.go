package vets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("vet not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, v Vet) (Vet, error) {
	v.ID = 0
	return s.repo.Create(ctx, v)
}

// Update falla con ErrNotFound si el ID no existe; no hay upsert.
func (s *Service) Update(ctx context.Context, v Vet) (Vet, error) {
	if err := s.repo.Update(ctx, v); err != nil {
		return Vet{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Vet, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByFirstName(ctx context.Context, firstName string) ([]Vet, error) {
	return s.repo.ListByFirstName(ctx, firstName)
}

func (s *Service) ListByLastName(ctx context.Context, lastName string) ([]Vet, error) {
	return s.repo.ListByLastName(ctx, lastName)
}
