package animals

import "context"

// Repository asigna el ID en Create.
type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Animal, error)
}
