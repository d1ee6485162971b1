package events

import (
	"context"
	"errors"
	"slices"
	"sync"

	"animal-registry/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
)

type Service struct {
	repo    Repository
	catalog Catalog
	pub     Publisher
	log     logger.Logger

	mu        sync.Mutex
	timelines map[int64]*Timeline
}

func NewService(repo Repository, catalog Catalog, pub Publisher, log logger.Logger) *Service {
	if pub == nil {
		pub = NopPublisher()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		catalog: catalog,
		pub:     pub,
		log:     log.With(map[string]any{"component": "events"}),

		timelines: make(map[int64]*Timeline),
	}
}

func (s *Service) Catalog() Catalog {
	return s.catalog
}

// Create persiste un evento ya armado (por el formulario o por una integración)
// y lo publica. Un fallo al publicar se loguea pero no anula la creación.
func (s *Service) Create(ctx context.Context, e Event) (Event, error) {
	if e.Animal <= 0 {
		return Event{}, ErrInvalidInput
	}
	if !s.catalog.HasCategory(e.Category) {
		return Event{}, ErrInvalidInput
	}
	idx := s.catalog.TypeIndex(e.Type.Label)
	if idx < 0 || idx != e.Type.Index {
		return Event{}, ErrInvalidInput
	}

	e.ID = 0
	saved, err := s.repo.Create(ctx, e)
	if err != nil {
		return Event{}, err
	}

	if err := s.pub.Publish(ctx, saved); err != nil {
		s.log.Warn("publish event failed", map[string]any{
			"event_id":  saved.ID,
			"animal_id": saved.Animal,
			"error":     err.Error(),
		})
	}

	s.log.Info("event created", map[string]any{
		"event_id":  saved.ID,
		"animal_id": saved.Animal,
		"category":  saved.Category,
	})
	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Event, error) {
	if id <= 0 {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve los eventos del animal filtrados y ordenados según q.
// Cada animal tiene su Timeline: si los eventos, el filtro y el orden no
// cambiaron desde el último List, no se vuelve a derivar.
func (s *Service) List(ctx context.Context, animalID int64, q ListQuery) ([]Event, error) {
	if animalID <= 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tl, ok := s.timelines[animalID]
	if !ok {
		tl = NewTimeline(items)
		s.timelines[animalID] = tl
	} else {
		tl.SetEvents(items)
	}
	tl.SetFilter(q.Category)
	tl.SetSort(q.Sort)

	// Copia: el slice derivado se comparte entre llamadas.
	return slices.Clone(tl.Events()), nil
}
