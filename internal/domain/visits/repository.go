package visits

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v Visit) (Visit, error)
	Update(ctx context.Context, v Visit) error
	GetByID(ctx context.Context, id int64) (Visit, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Visit, error)
	ListByPetID(ctx context.Context, petID int64) ([]Visit, error)
	ListByVetID(ctx context.Context, vetID int64) ([]Visit, error)
	// ListByDateRange es inclusivo en ambos extremos.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Visit, error)
	ListByDate(ctx context.Context, date time.Time) ([]Visit, error)
	ListByPetIDAndDate(ctx context.Context, petID int64, date time.Time) ([]Visit, error)
}
