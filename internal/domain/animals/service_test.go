package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, userID string) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:    "  Nagini ",
		Species: "Python regius",
		Morph:   "pastel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Nagini" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
	if a.Sex != SexUnknown {
		t.Fatalf("expected default sex UNKNOWN, got %s", a.Sex)
	}
	if a.Status != StatusAlive {
		t.Fatalf("expected default status ALIVE, got %s", a.Status)
	}
	if a.UserID != "user-1" {
		t.Fatalf("owner stamp mismatch: %+v", a)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Species: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing species, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name: "x", Species: "y", Sex: "HERMAPHRODITE",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown sex, got %v", err)
	}
}

func TestService_AuthorizeOwner(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name: "Rex", Species: "Pogona vitticeps",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AuthorizeOwner(context.Background(), a.ID, "user-1"); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	if _, err := svc.AuthorizeOwner(context.Background(), a.ID, "user-2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.AuthorizeOwner(context.Background(), "missing", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_PartialPatch(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name: "Rex", Species: "Pogona vitticeps",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "DECEASED"
	got, err := svc.Update(context.Background(), a.ID, "user-1", UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != StatusDeceased {
		t.Fatalf("expected DECEASED, got %s", got.Status)
	}
	if got.Name != "Rex" {
		t.Fatalf("untouched field changed: %q", got.Name)
	}

	// Otro usuario no puede editar
	name := "Hacked"
	if _, err := svc.Update(context.Background(), a.ID, "user-2", UpdateInput{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Status fuera del set
	bad := "GONE"
	if _, err := svc.Update(context.Background(), a.ID, "user-1", UpdateInput{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
