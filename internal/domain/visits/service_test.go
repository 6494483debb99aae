package visits_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petclinic-api/internal/adapters/storage/memory"
	"petclinic-api/internal/domain/visits"
)

func newSvc() *visits.Service {
	return visits.NewService(memory.NewVisitsRepo())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustCreate(t *testing.T, svc *visits.Service, v visits.Visit) visits.Visit {
	t.Helper()
	created, err := svc.Create(context.Background(), v)
	if err != nil {
		t.Fatalf("Create %+v error: %v", v, err)
	}
	return created
}

func TestService_Create_RequiresPetIDAndDate(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if _, err := svc.Create(ctx, visits.Visit{VisitDate: date(2026, 3, 1)}); !errors.Is(err, visits.ErrInvalidInput) {
		t.Fatalf("missing petId: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, visits.Visit{PetID: 1}); !errors.Is(err, visits.ErrInvalidInput) {
		t.Fatalf("missing visitDate: expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RoundTrip_WithOptionalFields(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	vetID := int64(4)
	cost := 150.50
	created := mustCreate(t, svc, visits.Visit{
		PetID:       7,
		VetID:       &vetID,
		VisitDate:   date(2026, 2, 14),
		Description: "control anual",
		Cost:        &cost,
	})

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.PetID != 7 || got.Description != "control anual" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.VetID == nil || *got.VetID != 4 {
		t.Fatalf("expected vetId 4, got %v", got.VetID)
	}
	if got.Cost == nil || *got.Cost != 150.50 {
		t.Fatalf("expected cost 150.50, got %v", got.Cost)
	}
	if !got.VisitDate.Equal(date(2026, 2, 14)) {
		t.Fatalf("expected normalized date, got %v", got.VisitDate)
	}
}

func TestService_NotFound_OnMissingID(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 99999); !errors.Is(err, visits.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 99999); !errors.Is(err, visits.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, visits.Visit{ID: 99999, PetID: 1, VisitDate: date(2026, 1, 1)}); !errors.Is(err, visits.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
}

func TestService_ListByDateRange_InclusiveAtBothEnds(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	start := date(2026, 3, 1)
	end := date(2026, 3, 31)

	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: start})               // borde inferior
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: date(2026, 3, 15)})  // dentro
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: end})                // borde superior
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: date(2026, 2, 28)})  // fuera
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: date(2026, 4, 1)})   // fuera

	got, err := svc.ListByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListByDateRange error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 visits in range, got %d", len(got))
	}
}

func TestService_ListByPetIDAndDate_ConjunctionOfFilters(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	d := date(2026, 5, 10)
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: d})
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: date(2026, 5, 11)})
	mustCreate(t, svc, visits.Visit{PetID: 2, VisitDate: d})

	got, err := svc.ListByPetIDAndDate(ctx, 1, d)
	if err != nil {
		t.Fatalf("ListByPetIDAndDate error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 visit for pet 1 on %s, got %d", d.Format("2006-01-02"), len(got))
	}

	byDate, err := svc.ListByDate(ctx, d)
	if err != nil {
		t.Fatalf("ListByDate error: %v", err)
	}
	if len(byDate) != 2 {
		t.Fatalf("expected 2 visits on %s, got %d", d.Format("2006-01-02"), len(byDate))
	}
}

func TestService_ListByPetID_EmptyResultIsNotAnError(t *testing.T) {
	svc := newSvc()

	got, err := svc.ListByPetID(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByPetID error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestService_ListByVetID_MatchesOnlyAssignedVet(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()

	vetID := int64(3)
	mustCreate(t, svc, visits.Visit{PetID: 1, VetID: &vetID, VisitDate: date(2026, 6, 1)})
	mustCreate(t, svc, visits.Visit{PetID: 1, VisitDate: date(2026, 6, 2)}) // sin vet

	got, err := svc.ListByVetID(ctx, 3)
	if err != nil {
		t.Fatalf("ListByVetID error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 visit for vet 3, got %d", len(got))
	}
}
