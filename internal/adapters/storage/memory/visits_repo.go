package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petclinic-api/internal/domain/visits"
)

type visitsRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]visits.Visit
}

func NewVisitsRepo() visits.Repository {
	return &visitsRepo{byID: make(map[int64]visits.Visit)}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v, nil
}

func (r *visitsRepo) Update(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) GetByID(ctx context.Context, id int64) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return visits.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *visitsRepo) ListAll(ctx context.Context) ([]visits.Visit, error) {
	return r.filter(func(visits.Visit) bool { return true })
}

func (r *visitsRepo) ListByPetID(ctx context.Context, petID int64) ([]visits.Visit, error) {
	return r.filter(func(v visits.Visit) bool { return v.PetID == petID })
}

func (r *visitsRepo) ListByVetID(ctx context.Context, vetID int64) ([]visits.Visit, error) {
	return r.filter(func(v visits.Visit) bool { return v.VetID != nil && *v.VetID == vetID })
}

// ListByDateRange incluye los extremos: una visita fechada exactamente en
// start o en end entra en el resultado.
func (r *visitsRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]visits.Visit, error) {
	return r.filter(func(v visits.Visit) bool {
		return !v.VisitDate.Before(start) && !v.VisitDate.After(end)
	})
}

func (r *visitsRepo) ListByDate(ctx context.Context, date time.Time) ([]visits.Visit, error) {
	return r.filter(func(v visits.Visit) bool { return v.VisitDate.Equal(date) })
}

func (r *visitsRepo) ListByPetIDAndDate(ctx context.Context, petID int64, date time.Time) ([]visits.Visit, error) {
	return r.filter(func(v visits.Visit) bool {
		return v.PetID == petID && v.VisitDate.Equal(date)
	})
}

func (r *visitsRepo) filter(keep func(visits.Visit) bool) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
