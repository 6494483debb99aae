package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/pettypes"
)

type petTypesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pettypes.PetType
}

func NewPetTypesRepo() pettypes.Repository {
	return &petTypesRepo{byID: make(map[int64]pettypes.PetType)}
}

func (r *petTypesRepo) Create(ctx context.Context, pt pettypes.PetType) (pettypes.PetType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	pt.ID = r.nextID
	r.byID[pt.ID] = pt
	return pt, nil
}

func (r *petTypesRepo) Update(ctx context.Context, pt pettypes.PetType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[pt.ID]; !exists {
		return pettypes.ErrNotFound
	}
	r.byID[pt.ID] = pt
	return nil
}

func (r *petTypesRepo) GetByID(ctx context.Context, id int64) (pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pt, ok := r.byID[id]
	if !ok {
		return pettypes.PetType{}, pettypes.ErrNotFound
	}
	return pt, nil
}

func (r *petTypesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pettypes.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *petTypesRepo) ListAll(ctx context.Context) ([]pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pettypes.PetType, 0, len(r.byID))
	for _, pt := range r.byID {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petTypesRepo) ListByName(ctx context.Context, name string) ([]pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pettypes.PetType, 0)
	for _, pt := range r.byID {
		if pt.Name == name {
			out = append(out, pt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
