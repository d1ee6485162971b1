package memory

import (
	"context"
	"sort"
	"sync"

	"animal-registry/internal/domain/events"
)

type eventRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]events.Event
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[int64]events.Event),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) (events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = e
	return e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e, nil
}

// ListByAnimal devuelve en orden de alta (id asc); filtrar y ordenar por
// fecha es trabajo del dominio.
func (r *eventRepo) ListByAnimal(ctx context.Context, animalID int64) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range r.byID {
		if e.Animal == animalID {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
