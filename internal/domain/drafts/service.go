package drafts

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-registry/internal/domain/eventform"
	"animal-registry/internal/domain/events"
	"animal-registry/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("draft not found")
	ErrInvalidOption = errors.New("value is not one of the allowed options")
)

type Service struct {
	store  Store
	events *events.Service
	log    logger.Logger
	now    func() time.Time
}

func NewService(store Store, eventsSvc *events.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:  store,
		events: eventsSvc,
		log:    log.With(map[string]any{"component": "drafts"}),
		now:    time.Now,
	}
}

// SubmitOutcome junta el resultado del formulario con el evento ya persistido.
type SubmitOutcome struct {
	Draft  eventform.Draft
	Result eventform.Result
	Event  events.Event
}

func (s *Service) machine(animalID int64) eventform.Machine {
	return eventform.Machine{
		Options:  eventform.OptionsFromCatalog(s.events.Catalog()),
		AnimalID: animalID,
	}
}

// Open abre el diálogo con un borrador vacío.
func (s *Service) Open(ctx context.Context, animalID int64, ownerUserID string) (Session, error) {
	now := s.now()
	sess := Session{
		ID:          uuid.NewString(),
		AnimalID:    animalID,
		OwnerUserID: ownerUserID,
		Draft:       eventform.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Get devuelve la sesión sólo si pertenece al animal y al usuario indicados.
func (s *Service) Get(ctx context.Context, id string, animalID int64, userID string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrNotFound
	}
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.AnimalID != animalID || sess.OwnerUserID != userID {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Change aplica un cambio de valor. Para type y category sólo se aceptan las
// opciones configuradas (o vacío), como en un select.
func (s *Service) Change(ctx context.Context, id string, animalID int64, userID string, field eventform.Field, value string) (Session, error) {
	sess, err := s.Get(ctx, id, animalID, userID)
	if err != nil {
		return Session{}, err
	}

	c := s.events.Catalog()
	if value != "" {
		if field == eventform.FieldType && !c.HasType(value) {
			return Session{}, ErrInvalidOption
		}
		if field == eventform.FieldCategory && !c.HasCategory(value) {
			return Session{}, ErrInvalidOption
		}
	}

	sess.Draft, _ = s.machine(animalID).Apply(sess.Draft, eventform.Action{
		Kind:  eventform.ActionChange,
		Field: field,
		Value: value,
	})
	return s.save(ctx, sess)
}

func (s *Service) Blur(ctx context.Context, id string, animalID int64, userID string, field eventform.Field) (Session, error) {
	sess, err := s.Get(ctx, id, animalID, userID)
	if err != nil {
		return Session{}, err
	}
	sess.Draft, _ = s.machine(animalID).Apply(sess.Draft, eventform.Action{
		Kind:  eventform.ActionBlur,
		Field: field,
	})
	return s.save(ctx, sess)
}

// Submit valida el borrador. La sesión se toma del store antes de crear, así
// dos submits simultáneos no crean dos eventos: el segundo recibe ErrNotFound.
// Si falta algún campo, o si falla la creación, la sesión vuelve al store.
func (s *Service) Submit(ctx context.Context, id string, animalID int64, userID string) (SubmitOutcome, error) {
	if _, err := s.Get(ctx, id, animalID, userID); err != nil {
		return SubmitOutcome{}, err
	}

	sess, err := s.store.Take(ctx, strings.TrimSpace(id))
	if err != nil {
		return SubmitOutcome{}, err
	}

	next, res, created, err := s.submitDraft(ctx, sess.Draft, animalID)
	if err != nil {
		if _, restoreErr := s.save(ctx, sess); restoreErr != nil {
			s.log.Error("restore draft after failed create", map[string]any{
				"draft_id": sess.ID,
				"error":    restoreErr.Error(),
			})
		}
		return SubmitOutcome{}, err
	}

	if res.Outcome == eventform.OutcomeValidationFailed {
		sess.Draft = next
		if _, err := s.save(ctx, sess); err != nil {
			return SubmitOutcome{}, err
		}
		return SubmitOutcome{Draft: next, Result: res}, nil
	}

	s.log.Debug("draft submitted", map[string]any{
		"draft_id": sess.ID,
		"event_id": created.ID,
	})
	return SubmitOutcome{Draft: next, Result: res, Event: created}, nil
}

// SubmitDraft valida y crea en un solo paso, sin sesión guardada.
func (s *Service) SubmitDraft(ctx context.Context, d eventform.Draft, animalID int64) (SubmitOutcome, error) {
	next, res, created, err := s.submitDraft(ctx, d, animalID)
	if err != nil {
		return SubmitOutcome{}, err
	}
	return SubmitOutcome{Draft: next, Result: res, Event: created}, nil
}

// Cancel descarta el borrador; el diálogo queda cerrado.
func (s *Service) Cancel(ctx context.Context, id string, animalID int64, userID string) error {
	sess, err := s.Get(ctx, id, animalID, userID)
	if err != nil {
		return err
	}
	_, res := s.machine(animalID).Apply(sess.Draft, eventform.Action{Kind: eventform.ActionCancel})
	s.log.Debug("draft cancelled", map[string]any{
		"draft_id": sess.ID,
		"outcome":  string(res.Outcome),
	})
	return s.store.Delete(ctx, sess.ID)
}

func (s *Service) submitDraft(ctx context.Context, d eventform.Draft, animalID int64) (eventform.Draft, eventform.Result, events.Event, error) {
	next, res := s.machine(animalID).Apply(d, eventform.Action{Kind: eventform.ActionSubmit})
	if res.Outcome != eventform.OutcomeCreated {
		return next, res, events.Event{}, nil
	}

	created, err := s.events.Create(ctx, res.Event)
	if err != nil {
		return d, eventform.Result{}, events.Event{}, err
	}
	return next, res, created, nil
}

func (s *Service) save(ctx context.Context, sess Session) (Session, error) {
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}
