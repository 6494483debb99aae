package visits

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("visit not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create exige petID y visitDate (invariantes de la entidad); el resto de
// campos puede venir vacío.
func (s *Service) Create(ctx context.Context, v Visit) (Visit, error) {
	if v.PetID == 0 || v.VisitDate.IsZero() {
		return Visit{}, ErrInvalidInput
	}
	v.ID = 0
	v.VisitDate = DateOnly(v.VisitDate)
	return s.repo.Create(ctx, v)
}

// Update falla con ErrNotFound si el ID no existe; no hay upsert.
func (s *Service) Update(ctx context.Context, v Visit) (Visit, error) {
	if v.PetID == 0 || v.VisitDate.IsZero() {
		return Visit{}, ErrInvalidInput
	}
	v.VisitDate = DateOnly(v.VisitDate)
	if err := s.repo.Update(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Visit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Visit, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByPetID(ctx context.Context, petID int64) ([]Visit, error) {
	return s.repo.ListByPetID(ctx, petID)
}

func (s *Service) ListByVetID(ctx context.Context, vetID int64) ([]Visit, error) {
	return s.repo.ListByVetID(ctx, vetID)
}

// ListByDateRange incluye las visitas fechadas exactamente en start o en end.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]Visit, error) {
	return s.repo.ListByDateRange(ctx, DateOnly(start), DateOnly(end))
}

func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]Visit, error) {
	return s.repo.ListByDate(ctx, DateOnly(date))
}

func (s *Service) ListByPetIDAndDate(ctx context.Context, petID int64, date time.Time) ([]Visit, error) {
	return s.repo.ListByPetIDAndDate(ctx, petID, DateOnly(date))
}
