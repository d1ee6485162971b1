package events

import "context"

// Repository persiste eventos. Create asigna el ID definitivo y devuelve
// el evento tal como quedó guardado.
type Repository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetByID(ctx context.Context, id int64) (Event, error)
	ListByAnimal(ctx context.Context, animalID int64) ([]Event, error)
}

type ListQuery struct {
	Category string
	Sort     SortMode
}
