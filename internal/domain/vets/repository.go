package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Vet) (Vet, error)
	Update(ctx context.Context, v Vet) error
	GetByID(ctx context.Context, id int64) (Vet, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Vet, error)
	ListByFirstName(ctx context.Context, firstName string) ([]Vet, error)
	ListByLastName(ctx context.Context, lastName string) ([]Vet, error)
}
