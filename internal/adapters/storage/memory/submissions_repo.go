package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-intake/internal/domain/submissions"
)

var (
	ErrNotFound = errors.New("not found")
)

type submissionsRepo struct {
	mu   sync.RWMutex
	byID map[string]submissions.Submission
}

func NewSubmissionsRepo() submissions.Repository {
	return &submissionsRepo{
		byID: make(map[string]submissions.Submission),
	}
}

func (r *submissionsRepo) Create(ctx context.Context, s submissions.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("submission id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("submission already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *submissionsRepo) GetByID(ctx context.Context, id string) (submissions.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return submissions.Submission{}, ErrNotFound
	}
	return s, nil
}

func (r *submissionsRepo) ListByUser(ctx context.Context, userID string) ([]submissions.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]submissions.Submission, 0)
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}

	// Orden estable por created_at asc, desempate por id
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
