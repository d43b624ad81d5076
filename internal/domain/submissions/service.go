package submissions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// maxErrorLen evita guardar bodies enteros del upstream.
const maxErrorLen = 500

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	UserID  string
	Variant string
	PetType string
	PetID   string
	Err     error // nil => created
}

func (s *Service) Record(ctx context.Context, in RecordInput) (Submission, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return Submission{}, ErrInvalidInput
	}

	sub := Submission{
		ID:        uuid.NewString(),
		UserID:    userID,
		Variant:   strings.TrimSpace(in.Variant),
		PetType:   strings.TrimSpace(in.PetType),
		PetID:     strings.TrimSpace(in.PetID),
		Status:    StatusCreated,
		CreatedAt: s.now().UTC(),
	}
	if in.Err != nil {
		sub.Status = StatusFailed
		sub.Error = truncate(in.Err.Error(), maxErrorLen)
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// GetForUser devuelve la submission solo si pertenece a userID.
// Para terceros responde ErrNotFound (no filtramos existencia).
func (s *Service) GetForUser(ctx context.Context, id, userID string) (Submission, error) {
	sub, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Submission{}, ErrNotFound
	}
	if sub.UserID != strings.TrimSpace(userID) {
		return Submission{}, ErrNotFound
	}
	return sub, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
