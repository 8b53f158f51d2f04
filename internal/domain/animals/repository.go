package animals

import "context"

// Repository es el contrato de persistencia de animales.
// GetByID devuelve ErrNotFound si el animal no existe.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	ListByOwner(ctx context.Context, userID string) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
}
