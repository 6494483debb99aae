package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/specialties"
)

type specialtiesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]specialties.Specialty
}

func NewSpecialtiesRepo() specialties.Repository {
	return &specialtiesRepo{byID: make(map[int64]specialties.Specialty)}
}

func (r *specialtiesRepo) Create(ctx context.Context, sp specialties.Specialty) (specialties.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sp.ID = r.nextID
	r.byID[sp.ID] = sp
	return sp, nil
}

func (r *specialtiesRepo) Update(ctx context.Context, sp specialties.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[sp.ID]; !exists {
		return specialties.ErrNotFound
	}
	r.byID[sp.ID] = sp
	return nil
}

func (r *specialtiesRepo) GetByID(ctx context.Context, id int64) (specialties.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sp, ok := r.byID[id]
	if !ok {
		return specialties.Specialty{}, specialties.ErrNotFound
	}
	return sp, nil
}

func (r *specialtiesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return specialties.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *specialtiesRepo) ListAll(ctx context.Context) ([]specialties.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]specialties.Specialty, 0, len(r.byID))
	for _, sp := range r.byID {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *specialtiesRepo) ListByName(ctx context.Context, name string) ([]specialties.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]specialties.Specialty, 0)
	for _, sp := range r.byID {
		if sp.Name == name {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
