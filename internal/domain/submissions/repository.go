package submissions

import "context"

type Repository interface {
	Create(ctx context.Context, s Submission) error
	GetByID(ctx context.Context, id string) (Submission, error)
	ListByUser(ctx context.Context, userID string) ([]Submission, error)
}
