package pettypes

import "context"

type Repository interface {
	Create(ctx context.Context, pt PetType) (PetType, error)
	Update(ctx context.Context, pt PetType) error
	GetByID(ctx context.Context, id int64) (PetType, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]PetType, error)
	ListByName(ctx context.Context, name string) ([]PetType, error)
}
