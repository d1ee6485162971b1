package drafts

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"animal-registry/internal/domain/eventform"
	"animal-registry/internal/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type testStore struct {
	mu   sync.Mutex
	byID map[string]Session
}

func newTestStore() *testStore {
	return &testStore{byID: map[string]Session{}}
}

func (s *testStore) Save(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sess.ID] = sess
	return nil
}

func (s *testStore) Get(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *testStore) Take(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	delete(s.byID, id)
	return sess, nil
}

func (s *testStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// testEventsRepo puede frenar cada Create en gate para forzar que dos
// submits se solapen.
type testEventsRepo struct {
	mu      sync.Mutex
	created []events.Event
	err     error
	gate    chan struct{}
}

func (r *testEventsRepo) Create(ctx context.Context, e events.Event) (events.Event, error) {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return events.Event{}, r.err
	}
	e.ID = int64(len(r.created) + 1)
	r.created = append(r.created, e)
	return e, nil
}

func (r *testEventsRepo) GetByID(ctx context.Context, id int64) (events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.created {
		if e.ID == id {
			return e, nil
		}
	}
	return events.Event{}, events.ErrNotFound
}

func (r *testEventsRepo) ListByAnimal(ctx context.Context, animalID int64) ([]events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.created...), nil
}

func newTestService() (*Service, *testStore, *testEventsRepo) {
	store := newTestStore()
	repo := &testEventsRepo{}
	catalog := events.Catalog{
		Types:      []string{"Registration", "Vaccination"},
		Categories: []string{"REGISTRATION", "HEALTH"},
	}
	svc := NewService(store, events.NewService(repo, catalog, nil, nil), nil)
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return svc, store, repo
}

func fill(t *testing.T, svc *Service, id string) {
	t.Helper()
	ctx := context.Background()
	values := map[eventform.Field]string{
		eventform.FieldType:     "Vaccination",
		eventform.FieldCategory: "HEALTH",
		eventform.FieldExpenses: "40",
		eventform.FieldComments: "annual shot",
		eventform.FieldDate:     "2024-06-01",
	}
	for f, v := range values {
		_, err := svc.Change(ctx, id, 3, "owner-1", f, v)
		require.NoError(t, err)
	}
}

func TestService_OpenSubmitIncomplete_KeepsSession(t *testing.T) {
	svc, store, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	_, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldType, "Registration")
	require.NoError(t, err)

	out, err := svc.Submit(ctx, sess.ID, 3, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, eventform.OutcomeValidationFailed, out.Result.Outcome)
	assert.Equal(t, eventform.MessageIncomplete, out.Draft.Message)
	assert.Empty(t, repo.created)

	stored := store.byID[sess.ID]
	assert.True(t, stored.Draft.Category.Invalid)
	assert.False(t, stored.Draft.Type.Invalid)
	assert.True(t, stored.Draft.Error)
}

func TestService_SubmitComplete_CreatesOnceAndCloses(t *testing.T) {
	svc, store, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)
	fill(t, svc, sess.ID)

	out, err := svc.Submit(ctx, sess.ID, 3, "owner-1")
	require.NoError(t, err)
	require.Equal(t, eventform.OutcomeCreated, out.Result.Outcome)

	require.Len(t, repo.created, 1)
	assert.EqualValues(t, 1, out.Event.ID)
	assert.EqualValues(t, 3, out.Event.Animal)
	assert.Equal(t, 1, out.Event.Type.Index)
	assert.Equal(t, 40.0, out.Event.Expenses)

	_, exists := store.byID[sess.ID]
	assert.False(t, exists, "session must be closed after creation")

	_, err = svc.Submit(ctx, sess.ID, 3, "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, repo.created, 1)
}

func TestService_Change_RejectsUnknownOptions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)

	_, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldType, "Grooming")
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldCategory, "PARTY")
	assert.ErrorIs(t, err, ErrInvalidOption)

	// Vaciar un select sí está permitido.
	_, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldCategory, "")
	assert.NoError(t, err)

	// Texto libre en los demás campos.
	_, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldExpenses, "cheap")
	assert.NoError(t, err)
}

func TestService_BlurThenChange(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)

	sess, err = svc.Blur(ctx, sess.ID, 3, "owner-1", eventform.FieldComments)
	require.NoError(t, err)
	assert.True(t, sess.Draft.Comments.Invalid)

	sess, err = svc.Change(ctx, sess.ID, 3, "owner-1", eventform.FieldComments, "")
	require.NoError(t, err)
	assert.False(t, sess.Draft.Comments.Invalid)
}

func TestService_Cancel_DeletesSession(t *testing.T) {
	svc, store, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)
	fill(t, svc, sess.ID)

	require.NoError(t, svc.Cancel(ctx, sess.ID, 3, "owner-1"))
	assert.Empty(t, store.byID)
	assert.Empty(t, repo.created)
}

func TestService_Get_ScopedToAnimalAndOwner(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)

	_, err = svc.Get(ctx, sess.ID, 4, "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, sess.ID, 3, "owner-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_SubmitDraft_OneShot(t *testing.T) {
	svc, store, repo := newTestService()

	d := eventform.Change(eventform.New(), eventform.FieldType, "Registration")
	out, err := svc.SubmitDraft(context.Background(), d, 3)
	require.NoError(t, err)
	assert.Equal(t, eventform.OutcomeValidationFailed, out.Result.Outcome)
	assert.Len(t, out.Result.Missing, 4)
	assert.Empty(t, repo.created)
	assert.Empty(t, store.byID)
}

func TestService_Submit_ConcurrentCreatesOnce(t *testing.T) {
	svc, store, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)
	fill(t, svc, sess.ID)

	repo.gate = make(chan struct{})

	const callers = 2
	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		outcomes = make([]SubmitOutcome, callers)
		errs     = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			outcomes[i], errs[i] = svc.Submit(ctx, sess.ID, 3, "owner-1")
		}(i)
	}
	close(start)
	// Los Create quedan frenados un momento para que ambos submits se solapen.
	time.Sleep(50 * time.Millisecond)
	close(repo.gate)
	wg.Wait()

	created, notFound := 0, 0
	for i := 0; i < callers; i++ {
		switch {
		case errs[i] == nil && outcomes[i].Result.Outcome == eventform.OutcomeCreated:
			created++
		case errors.Is(errs[i], ErrNotFound):
			notFound++
		default:
			t.Fatalf("unexpected submit result: outcome=%v err=%v", outcomes[i].Result.Outcome, errs[i])
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, notFound)
	assert.Len(t, repo.created, 1)
	assert.Empty(t, store.byID)
}

func TestService_Submit_RestoresDraftWhenCreateFails(t *testing.T) {
	svc, store, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Open(ctx, 3, "owner-1")
	require.NoError(t, err)
	fill(t, svc, sess.ID)

	boom := errors.New("db down")
	repo.err = boom

	_, err = svc.Submit(ctx, sess.ID, 3, "owner-1")
	assert.ErrorIs(t, err, boom)

	restored, ok := store.byID[sess.ID]
	require.True(t, ok, "draft must be back in the store after a failed create")
	assert.Equal(t, "Vaccination", restored.Draft.Type.Value)

	// Reintento con la base de vuelta.
	repo.err = nil
	out, err := svc.Submit(ctx, sess.ID, 3, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, eventform.OutcomeCreated, out.Result.Outcome)
	assert.Len(t, repo.created, 1)
}
