package owners

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("owner not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persiste el candidato y devuelve la copia con el ID asignado por el store.
// No hay chequeos de unicidad por atributos: dos owners con el mismo nombre son válidos.
func (s *Service) Create(ctx context.Context, o Owner) (Owner, error) {
	o.ID = 0
	return s.repo.Create(ctx, o)
}

// Update sobreescribe el registro completo en o.ID.
// Falla con ErrNotFound si el ID no existe (no hay upsert).
func (s *Service) Update(ctx context.Context, o Owner) (Owner, error) {
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete verifica existencia antes de borrar para que nunca sea un no-op silencioso.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Owner, error) {
	return s.repo.ListAll(ctx)
}

// Los finders por atributo devuelven lista vacía cuando no hay match, nunca error.

func (s *Service) ListByFirstName(ctx context.Context, firstName string) ([]Owner, error) {
	return s.repo.ListByFirstName(ctx, firstName)
}

func (s *Service) ListByLastName(ctx context.Context, lastName string) ([]Owner, error) {
	return s.repo.ListByLastName(ctx, lastName)
}

func (s *Service) ListByCity(ctx context.Context, city string) ([]Owner, error) {
	return s.repo.ListByCity(ctx, city)
}
