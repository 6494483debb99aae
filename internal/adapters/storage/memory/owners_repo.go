package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/owners"
)

// Repos in-memory para dev y tests: maps protegidos con RWMutex y un
// contador para asignar ids (el store asigna la identidad, no el service).

type ownersRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{byID: make(map[int64]owners.Owner)}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o.ID = r.nextID
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *ownersRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}

	// orden estable por id asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownersRepo) ListByFirstName(ctx context.Context, firstName string) ([]owners.Owner, error) {
	return r.filter(func(o owners.Owner) bool { return o.FirstName == firstName })
}

func (r *ownersRepo) ListByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	return r.filter(func(o owners.Owner) bool { return o.LastName == lastName })
}

func (r *ownersRepo) ListByCity(ctx context.Context, city string) ([]owners.Owner, error) {
	return r.filter(func(o owners.Owner) bool { return o.City == city })
}

func (r *ownersRepo) filter(keep func(owners.Owner) bool) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
