package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-intake/internal/domain/submissions"
)

func TestSubmissionsRepo_CreateGetList(t *testing.T) {
	repo := NewSubmissionsRepo()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	items := []submissions.Submission{
		{ID: "b", UserID: "u1", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "a", UserID: "u1", CreatedAt: base},
		{ID: "c", UserID: "u2", CreatedAt: base},
	}
	for _, s := range items {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create(%s): %v", s.ID, err)
		}
	}

	if err := repo.Create(ctx, items[0]); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if err := repo.Create(ctx, submissions.Submission{}); err == nil {
		t.Fatalf("expected empty id error")
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil || got.UserID != "u1" {
		t.Fatalf("GetByID: %#v %v", got, err)
	}
	if _, err := repo.GetByID(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("expected [a b] ordered by created_at, got %#v", list)
	}
}
