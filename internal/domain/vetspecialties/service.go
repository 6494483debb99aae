package vetspecialties

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("vet-specialty not found")

	// ErrDuplicate: crear un par que ya existe se rechaza en vez de
	// sobreescribir; dos instancias con el mismo par son la misma relación.
	ErrDuplicate = errors.New("vet-specialty already exists")
)

// ReplaceError indica que el par original ya fue eliminado pero el reemplazo
// no pudo crearse. Removed conserva la clave perdida para poder recrearla
// a mano (no hay rollback entre los dos pasos).
type ReplaceError struct {
	Removed Key
	Err     error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replace vet-specialty (%d,%d): original removed, replacement failed: %v",
		e.Removed.VetID, e.Removed.SpecialtyID, e.Err)
}

func (e *ReplaceError) Unwrap() error { return e.Err }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, vs VetSpecialty) (VetSpecialty, error) {
	if err := s.repo.Create(ctx, vs); err != nil {
		return VetSpecialty{}, err
	}
	return vs, nil
}

// GetByID compara ambas componentes: (5,9) no matchea con (5,10) ni (4,9).
func (s *Service) GetByID(ctx context.Context, key Key) (VetSpecialty, error) {
	return s.repo.GetByID(ctx, key)
}

func (s *Service) ListAll(ctx context.Context) ([]VetSpecialty, error) {
	return s.repo.ListAll(ctx)
}

// ListByVetID devuelve las especialidades asignadas a un veterinario.
func (s *Service) ListByVetID(ctx context.Context, vetID int64) ([]VetSpecialty, error) {
	return s.repo.ListByVetID(ctx, vetID)
}

// ListBySpecialtyID devuelve los veterinarios que ejercen una especialidad.
func (s *Service) ListBySpecialtyID(ctx context.Context, specialtyID int64) ([]VetSpecialty, error) {
	return s.repo.ListBySpecialtyID(ctx, specialtyID)
}

func (s *Service) Delete(ctx context.Context, key Key) error {
	if _, err := s.repo.GetByID(ctx, key); err != nil {
		return err
	}
	return s.repo.Delete(ctx, key)
}

// Replace es el "update" de la asociación: como la clave es el dato, no hay
// nada que mutar in-place. Se confirma que el par de key existe, se elimina,
// y se crea el reemplazo — que puede apuntar a un vet y/o specialty distintos
// de los del path. Los dos pasos no son atómicos: si el create falla después
// del delete, el par original ya se perdió y se devuelve *ReplaceError con
// la clave eliminada.
func (s *Service) Replace(ctx context.Context, key Key, replacement VetSpecialty) (VetSpecialty, error) {
	if _, err := s.repo.GetByID(ctx, key); err != nil {
		return VetSpecialty{}, err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return VetSpecialty{}, err
	}
	if err := s.repo.Create(ctx, replacement); err != nil {
		return VetSpecialty{}, &ReplaceError{Removed: key, Err: err}
	}
	return replacement, nil
}
