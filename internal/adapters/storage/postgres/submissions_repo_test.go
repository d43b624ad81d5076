package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pet-intake/internal/domain/submissions"

	"github.com/google/uuid"
)

// Requiere TEST_DB_DSN apuntando a un Postgres descartable.
func TestSubmissionsRepo_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	repo := NewSubmissionsRepo(db)
	userID := "it-" + uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s := submissions.Submission{
		ID:        uuid.NewString(),
		UserID:    userID,
		Variant:   "details",
		PetType:   "DOG",
		PetID:     "pet-1",
		Status:    submissions.StatusCreated,
		CreatedAt: now,
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserID != userID || got.Status != submissions.StatusCreated || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected row: %#v", got)
	}

	list, err := repo.ListByUser(ctx, userID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByUser: %#v %v", list, err)
	}

	if _, err := repo.GetByID(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
