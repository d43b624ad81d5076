package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-intake/internal/domain/submissions"
)

type SubmissionsRepo struct {
	db *sql.DB
}

func NewSubmissionsRepo(db *sql.DB) *SubmissionsRepo {
	return &SubmissionsRepo{db: db}
}

const submissionColumns = `id, user_id, variant, pet_type, pet_id, status, error, created_at`

func (r *SubmissionsRepo) Create(ctx context.Context, s submissions.Submission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (`+submissionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.ID,
		s.UserID,
		s.Variant,
		s.PetType,
		s.PetID,
		string(s.Status),
		s.Error,
		s.CreatedAt,
	)
	return err
}

func (r *SubmissionsRepo) GetByID(ctx context.Context, id string) (submissions.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return submissions.Submission{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE id = $1
	`, id)

	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return submissions.Submission{}, ErrNotFound
		}
		return submissions.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionsRepo) ListByUser(ctx context.Context, userID string) ([]submissions.Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]submissions.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(sc scanner) (submissions.Submission, error) {
	var s submissions.Submission
	var status string
	if err := sc.Scan(
		&s.ID,
		&s.UserID,
		&s.Variant,
		&s.PetType,
		&s.PetID,
		&status,
		&s.Error,
		&s.CreatedAt,
	); err != nil {
		return submissions.Submission{}, err
	}
	s.Status = submissions.Status(status)
	return s, nil
}
