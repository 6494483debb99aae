package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/vetspecialties"
)

// vetSpecialtiesRepo usa la clave compuesta como clave de map: la igualdad
// estructural del value type garantiza match exacto de ambas componentes.
type vetSpecialtiesRepo struct {
	mu    sync.RWMutex
	byKey map[vetspecialties.Key]vetspecialties.VetSpecialty
}

func NewVetSpecialtiesRepo() vetspecialties.Repository {
	return &vetSpecialtiesRepo{byKey: make(map[vetspecialties.Key]vetspecialties.VetSpecialty)}
}

func (r *vetSpecialtiesRepo) Create(ctx context.Context, vs vetspecialties.VetSpecialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[vs.ID()]; exists {
		return vetspecialties.ErrDuplicate
	}
	r.byKey[vs.ID()] = vs
	return nil
}

func (r *vetSpecialtiesRepo) GetByID(ctx context.Context, key vetspecialties.Key) (vetspecialties.VetSpecialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vs, ok := r.byKey[key]
	if !ok {
		return vetspecialties.VetSpecialty{}, vetspecialties.ErrNotFound
	}
	return vs, nil
}

func (r *vetSpecialtiesRepo) Delete(ctx context.Context, key vetspecialties.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[key]; !exists {
		return vetspecialties.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

func (r *vetSpecialtiesRepo) ListAll(ctx context.Context) ([]vetspecialties.VetSpecialty, error) {
	return r.filter(func(vetspecialties.VetSpecialty) bool { return true })
}

func (r *vetSpecialtiesRepo) ListByVetID(ctx context.Context, vetID int64) ([]vetspecialties.VetSpecialty, error) {
	return r.filter(func(vs vetspecialties.VetSpecialty) bool { return vs.VetID == vetID })
}

func (r *vetSpecialtiesRepo) ListBySpecialtyID(ctx context.Context, specialtyID int64) ([]vetspecialties.VetSpecialty, error) {
	return r.filter(func(vs vetspecialties.VetSpecialty) bool { return vs.SpecialtyID == specialtyID })
}

func (r *vetSpecialtiesRepo) filter(keep func(vetspecialties.VetSpecialty) bool) ([]vetspecialties.VetSpecialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vetspecialties.VetSpecialty, 0)
	for _, vs := range r.byKey {
		if keep(vs) {
			out = append(out, vs)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VetID != out[j].VetID {
			return out[i].VetID < out[j].VetID
		}
		return out[i].SpecialtyID < out[j].SpecialtyID
	})
	return out, nil
}
