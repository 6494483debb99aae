package vetspecialties

import "context"

type Repository interface {
	Create(ctx context.Context, vs VetSpecialty) error
	GetByID(ctx context.Context, key Key) (VetSpecialty, error)
	Delete(ctx context.Context, key Key) error
	ListAll(ctx context.Context) ([]VetSpecialty, error)
	ListByVetID(ctx context.Context, vetID int64) ([]VetSpecialty, error)
	ListBySpecialtyID(ctx context.Context, specialtyID int64) ([]VetSpecialty, error)
}
