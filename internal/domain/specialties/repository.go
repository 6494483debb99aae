package specialties

import "context"

type Repository interface {
	Create(ctx context.Context, sp Specialty) (Specialty, error)
	Update(ctx context.Context, sp Specialty) error
	GetByID(ctx context.Context, id int64) (Specialty, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Specialty, error)
	ListByName(ctx context.Context, name string) ([]Specialty, error)
}
