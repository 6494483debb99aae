package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/vets"
)

type vetsRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]vets.Vet
}

func NewVetsRepo() vets.Repository {
	return &vetsRepo{byID: make(map[int64]vets.Vet)}
}

func (r *vetsRepo) Create(ctx context.Context, v vets.Vet) (vets.Vet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v, nil
}

func (r *vetsRepo) Update(ctx context.Context, v vets.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetsRepo) GetByID(ctx context.Context, id int64) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Vet{}, vets.ErrNotFound
	}
	return v, nil
}

func (r *vetsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return vets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *vetsRepo) ListAll(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *vetsRepo) ListByFirstName(ctx context.Context, firstName string) ([]vets.Vet, error) {
	return r.filter(func(v vets.Vet) bool { return v.FirstName == firstName })
}

func (r *vetsRepo) ListByLastName(ctx context.Context, lastName string) ([]vets.Vet, error) {
	return r.filter(func(v vets.Vet) bool { return v.LastName == lastName })
}

func (r *vetsRepo) filter(keep func(vets.Vet) bool) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0)
	for _, v := range r.byID {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
