package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/animals"
)

// AnimalsRepo es una implementación en memoria de animals.Repository.
// Pensada para desarrollo local y tests; no persiste.
type AnimalsRepo struct {
	mu    sync.RWMutex
	items map[string]animals.Animal
}

func NewAnimalsRepo() *AnimalsRepo {
	return &AnimalsRepo{items: make(map[string]animals.Animal)}
}

var _ animals.Repository = (*AnimalsRepo)(nil)

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, userID string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; !ok {
		return animals.ErrNotFound
	}
	r.items[a.ID] = a
	return nil
}
