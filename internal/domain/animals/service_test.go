package animals

import (
	"context"
	"testing"
	"time"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.OwnerUserID == ownerUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestService_Create_NormalizesAndAssignsID(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "  Milo ",
		Species: "Dog",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("expected id 1, got %d", a.ID)
	}
	if a.Name != "Milo" || a.Species != SpeciesDog {
		t.Fatalf("unexpected normalization: %#v", a)
	}
	if a.Sex != SexUnknown {
		t.Fatalf("expected default sex unknown, got %q", a.Sex)
	}
	if !a.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt from clock")
	}
}

func TestService_Create_RequiresNameSpeciesOwner(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", CreateInput{Name: "Milo", Species: "dog"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without owner, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Species: "dog"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without species, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Species: "dog", Sex: "robot"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad sex, got %v", err)
	}
}

func TestService_Authorize(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	a, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Authorize(ctx, a.ID, "owner-1"); err != nil {
		t.Fatalf("owner should be authorized, got %v", err)
	}
	if _, err := svc.Authorize(ctx, a.ID, "someone-else"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Authorize(ctx, 404, "owner-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParams_FixedOrder(t *testing.T) {
	bd := time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)
	rows := Params(Animal{
		ID:        12,
		Name:      "Milo",
		Species:   SpeciesCat,
		Sex:       SexMale,
		BirthDate: &bd,
		Microchip: "440000000000001",
	})

	want := []Param{
		{"ID", "12"},
		{"Name", "Milo"},
		{"Species", "cat"},
		{"Breed", ""},
		{"Sex", "male"},
		{"Birth date", "2020-05-17"},
		{"Microchip", "440000000000001"},
		{"Notes", ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %#v, got %#v", i, want[i], rows[i])
		}
	}
}
