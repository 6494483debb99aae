package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int64) (Owner, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Owner, error)
	ListByFirstName(ctx context.Context, firstName string) ([]Owner, error)
	ListByLastName(ctx context.Context, lastName string) ([]Owner, error)
	ListByCity(ctx context.Context, city string) ([]Owner, error)
}
