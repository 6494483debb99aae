package vetspecialties_test

import (
	"context"
	"errors"
	"testing"

	"petclinic-api/internal/adapters/storage/memory"
	"petclinic-api/internal/domain/vetspecialties"
)

func newSvc() *vetspecialties.Service {
	return vetspecialties.NewService(memory.NewVetSpecialtiesRepo())
}

func TestService_GetByID_MatchesExactPairOnly(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 5, SpecialtyID: 9}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 5, SpecialtyID: 9}); err != nil {
		t.Fatalf("expected exact pair to be found, got %v", err)
	}

	// match parcial no es match
	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 5, SpecialtyID: 10}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("(5,10): expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 4, SpecialtyID: 9}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("(4,9): expected ErrNotFound, got %v", err)
	}
}

func TestService_Create_RejectsDuplicatePair(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 2}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 2}); !errors.Is(err, vetspecialties.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// un solo row lógico para el par
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 association, got %d", len(all))
	}
}

func TestService_ListByEitherSide(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	pairs := []vetspecialties.VetSpecialty{
		{VetID: 1, SpecialtyID: 10},
		{VetID: 1, SpecialtyID: 11},
		{VetID: 2, SpecialtyID: 10},
	}
	for _, vs := range pairs {
		if _, err := svc.Create(ctx, vs); err != nil {
			t.Fatalf("Create %+v error: %v", vs, err)
		}
	}

	byVet, err := svc.ListByVetID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByVetID error: %v", err)
	}
	if len(byVet) != 2 {
		t.Fatalf("expected 2 specialties for vet 1, got %d", len(byVet))
	}

	bySpecialty, err := svc.ListBySpecialtyID(ctx, 10)
	if err != nil {
		t.Fatalf("ListBySpecialtyID error: %v", err)
	}
	if len(bySpecialty) != 2 {
		t.Fatalf("expected 2 vets for specialty 10, got %d", len(bySpecialty))
	}

	// lado sin asociaciones: lista vacía, nunca error
	none, err := svc.ListByVetID(ctx, 99)
	if err != nil {
		t.Fatalf("ListByVetID (empty) error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestService_Delete_PrechecksExistence(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if err := svc.Delete(ctx, vetspecialties.Key{VetID: 7, SpecialtyID: 8}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting missing pair, got %v", err)
	}

	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 7, SpecialtyID: 8}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(ctx, vetspecialties.Key{VetID: 7, SpecialtyID: 8}); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 7, SpecialtyID: 8}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestService_Replace_MovesAssociationToNewPair(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 2}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.Replace(ctx,
		vetspecialties.Key{VetID: 1, SpecialtyID: 2},
		vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 3},
	)
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if got.VetID != 1 || got.SpecialtyID != 3 {
		t.Fatalf("expected replacement (1,3), got %+v", got)
	}

	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 1, SpecialtyID: 2}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("expected old pair gone, got %v", err)
	}
	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 1, SpecialtyID: 3}); err != nil {
		t.Fatalf("expected new pair present, got %v", err)
	}
}

func TestService_Replace_MissingPairFailsBeforeDeleting(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	_, err := svc.Replace(ctx,
		vetspecialties.Key{VetID: 1, SpecialtyID: 2},
		vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 3},
	)
	if !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// failingCreateRepo simula un store que acepta el delete pero rechaza el
// create del reemplazo, para cubrir la ventana de falla parcial.
type failingCreateRepo struct {
	vetspecialties.Repository
	createErr error
}

func (r *failingCreateRepo) Create(ctx context.Context, vs vetspecialties.VetSpecialty) error {
	if r.createErr != nil {
		return r.createErr
	}
	return r.Repository.Create(ctx, vs)
}

func TestService_Replace_CreateFailure_ReportsRemovedKey(t *testing.T) {
	inner := memory.NewVetSpecialtiesRepo()
	repo := &failingCreateRepo{Repository: inner}
	svc := vetspecialties.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 2}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	repo.createErr = errors.New("storage down")
	_, err := svc.Replace(ctx,
		vetspecialties.Key{VetID: 1, SpecialtyID: 2},
		vetspecialties.VetSpecialty{VetID: 1, SpecialtyID: 3},
	)

	var repErr *vetspecialties.ReplaceError
	if !errors.As(err, &repErr) {
		t.Fatalf("expected *ReplaceError, got %v", err)
	}
	if repErr.Removed != (vetspecialties.Key{VetID: 1, SpecialtyID: 2}) {
		t.Fatalf("expected removed key (1,2), got %+v", repErr.Removed)
	}

	// el par original ya no existe: la ventana de falla es observable
	if _, err := svc.GetByID(ctx, vetspecialties.Key{VetID: 1, SpecialtyID: 2}); !errors.Is(err, vetspecialties.ErrNotFound) {
		t.Fatalf("expected original pair lost, got %v", err)
	}
}
