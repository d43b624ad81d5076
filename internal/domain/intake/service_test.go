package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-intake/internal/domain/submissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type fakeCreator struct {
	calls []Record
	id    string
	err   error
}

func (f *fakeCreator) CreatePet(ctx context.Context, rec Record) (CreatedPet, error) {
	f.calls = append(f.calls, rec)
	if f.err != nil {
		return CreatedPet{}, f.err
	}
	return CreatedPet{ID: f.id}, nil
}

type fakeCaps struct {
	allow bool
	err   error
}

func (f fakeCaps) Has(ctx context.Context, userID, capability string) (bool, error) {
	return f.allow, f.err
}

type ledgerRepo struct {
	items []submissions.Submission
	fail  error
}

func (r *ledgerRepo) Create(ctx context.Context, s submissions.Submission) error {
	if r.fail != nil {
		return r.fail
	}
	r.items = append(r.items, s)
	return nil
}

func (r *ledgerRepo) GetByID(ctx context.Context, id string) (submissions.Submission, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return submissions.Submission{}, errors.New("not found")
}

func (r *ledgerRepo) ListByUser(ctx context.Context, userID string) ([]submissions.Submission, error) {
	return r.items, nil
}

func newTestService(creator PetCreator, caps fakeCaps, useCaps bool, repo *ledgerRepo) *Service {
	d := Deps{
		Creator:     creator,
		Submissions: submissions.NewService(repo),
	}
	if useCaps {
		d.Capabilities = caps
	}
	svc := NewService(d)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Submit_Details(t *testing.T) {
	creator := &fakeCreator{id: "pet-123"}
	repo := &ledgerRepo{}
	svc := newTestService(creator, fakeCaps{}, false, repo)

	res, err := svc.Submit(context.Background(), "user-1", Form{
		Variant:          VariantDetails,
		Weight:           "40",
		AgeYears:         "8",
		FriendlyWithDogs: "yes",
	}, EntryContext{PetType: "", Dates: "2026-11-01", Location: "Austin"})
	require.NoError(t, err)

	require.Len(t, creator.calls, 1)
	sent := creator.calls[0]
	assert.Equal(t, "user-1", sent.UserID)
	assert.Equal(t, SizeMedium, sent.Size)
	assert.Equal(t, AgeSenior, sent.Age)
	assert.Equal(t, PetTypeCat, sent.Type)

	assert.Equal(t, "pet-123", res.PetID)
	assert.Equal(t, sent, res.Record)
	assert.Equal(t, ScreenPetDetails, res.Next.Screen)
	assert.Equal(t, "Dog", res.Next.InitialData.PetType)
	assert.Equal(t, "Austin", res.Next.InitialData.Location)

	require.Len(t, repo.items, 1)
	assert.Equal(t, res.SubmissionID, repo.items[0].ID)
	assert.Equal(t, submissions.StatusCreated, repo.items[0].Status)
	assert.Equal(t, "CAT", repo.items[0].PetType)
	assert.Equal(t, "pet-123", repo.items[0].PetID)
}

func TestService_Submit_QuickNavigatesToResults(t *testing.T) {
	svc := newTestService(&fakeCreator{id: "p"}, fakeCaps{}, false, &ledgerRepo{})

	entry := EntryContext{PetType: "Dog", Dates: "d", Location: "l"}
	res, err := svc.Submit(context.Background(), "user-1", Form{Variant: VariantQuick, SizeKey: "SMALL"}, entry)
	require.NoError(t, err)
	assert.Equal(t, ScreenSitterResults, res.Next.Screen)
	assert.Equal(t, entry, res.Next.InitialData)
	assert.Equal(t, SizeSmall, res.Record.Size)
}

func TestService_Submit_RequiresUser(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator, fakeCaps{}, false, &ledgerRepo{})

	_, err := svc.Submit(context.Background(), "  ", Form{}, EntryContext{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, creator.calls)
}

func TestService_Submit_CapabilityGate(t *testing.T) {
	creator := &fakeCreator{}

	svc := newTestService(creator, fakeCaps{allow: false}, true, &ledgerRepo{})
	_, err := svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	assert.ErrorIs(t, err, ErrForbidden)

	svc = newTestService(creator, fakeCaps{err: errors.New("plans down")}, true, &ledgerRepo{})
	_, err = svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Empty(t, creator.calls)

	svc = newTestService(creator, fakeCaps{allow: true}, true, &ledgerRepo{})
	_, err = svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	assert.NoError(t, err)
	assert.Len(t, creator.calls, 1)
}

func TestService_Submit_UpstreamFailure(t *testing.T) {
	repo := &ledgerRepo{}

	creator := &fakeCreator{err: errors.New("connection refused")}
	svc := newTestService(creator, fakeCaps{}, false, repo)

	_, err := svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	var ce *CreateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, DefaultCreateMessage, ce.Message)
	assert.ErrorIs(t, err, ErrCreateFailed)

	require.Len(t, repo.items, 1)
	assert.Equal(t, submissions.StatusFailed, repo.items[0].Status)
	assert.Contains(t, repo.items[0].Error, "connection refused")

	creator.err = &CreateError{Message: "Name already taken"}
	_, err = svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Name already taken", ce.Message)
}

func TestService_Submit_LedgerFailureDoesNotFailCreation(t *testing.T) {
	creator := &fakeCreator{id: "pet-1"}
	svc := newTestService(creator, fakeCaps{}, false, &ledgerRepo{fail: errors.New("db down")})

	res, err := svc.Submit(context.Background(), "user-1", Form{}, EntryContext{})
	require.NoError(t, err)
	assert.Equal(t, "pet-1", res.PetID)
	assert.Empty(t, res.SubmissionID)
}

func TestService_Options(t *testing.T) {
	svc := newTestService(&fakeCreator{}, fakeCaps{}, false, &ledgerRepo{})

	opts := svc.Options()
	require.Len(t, opts.Sizes, 4)
	require.Len(t, opts.Ages, 4)
	assert.Equal(t, "SMALL", opts.Sizes[0].Key)
	assert.Equal(t, int(SizeSmall), opts.Sizes[0].Value)

	// las copias no deben filtrar mutaciones
	opts.Sizes[0].Key = "mutated"
	assert.Equal(t, "SMALL", svc.Options().Sizes[0].Key)
}
