package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-intake/internal/domain/submissions"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/ports/capabilities"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrCreateFailed    = errors.New("pet creation failed")
)

// DefaultCreateMessage es lo que ve el usuario si el upstream no explica nada.
const DefaultCreateMessage = "Failed to save pet details. Please try again."

// CreateError es el error que devuelven los PetCreator.
// Message es apto para mostrar al usuario.
type CreateError struct {
	Message string
	Err     error
}

func (e *CreateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrCreateFailed, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", ErrCreateFailed, e.Message, e.Err)
}

func (e *CreateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCreateFailed}
	}
	return []error{ErrCreateFailed, e.Err}
}

// CreatedPet es lo que sabemos de la mascota creada upstream.
type CreatedPet struct {
	ID string
}

// PetCreator es el servicio externo de creación de mascotas.
// Recibe exactamente un Record por llamada.
type PetCreator interface {
	CreatePet(ctx context.Context, rec Record) (CreatedPet, error)
}

// Next es la pantalla a la que navega el cliente después del envío.
type Next struct {
	Screen      string       `json:"screen"`
	InitialData EntryContext `json:"initialData"`
}

const (
	ScreenPetDetails    = "PetDetails"
	ScreenSitterResults = "SitterResults"
)

type Result struct {
	SubmissionID string `json:"submissionId,omitempty"`
	PetID        string `json:"petId,omitempty"`
	Record       Record `json:"record"`
	Next         Next   `json:"next"`
}

type Service struct {
	creator PetCreator
	ledger  *submissions.Service
	caps    capabilities.Resolver // nil => sin gating por plan
	log     logger.Logger
	now     func() time.Time
}

type Deps struct {
	Creator      PetCreator
	Submissions  *submissions.Service
	Capabilities capabilities.Resolver
	Logger       logger.Logger
}

func NewService(d Deps) *Service {
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		creator: d.Creator,
		ledger:  d.Submissions,
		caps:    d.Capabilities,
		log:     log.With(map[string]any{"module": "intake"}),
		now:     time.Now,
	}
}

// Preview normaliza sin enviar nada.
func (s *Service) Preview(f Form, c EntryContext) Record {
	return Assemble(f, c, s.now())
}

func (s *Service) Options() Options {
	return Choices()
}

// Submit normaliza el form y lo envía una sola vez al PetCreator.
// El userId sale de la sesión autenticada.
func (s *Service) Submit(ctx context.Context, userID string, f Form, c EntryContext) (Result, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Result{}, ErrUnauthenticated
	}

	log := s.log.With(map[string]any{"user_id": userID, "variant": string(f.Variant)})

	if s.caps != nil {
		ok, err := s.caps.Has(ctx, userID, capabilities.PetsCreate)
		if err != nil {
			log.Warn("capability check failed", map[string]any{"err": err})
			return Result{}, ErrForbidden
		}
		if !ok {
			return Result{}, ErrForbidden
		}
	}

	rec := Assemble(f, c, s.now())
	rec.UserID = userID

	created, createErr := s.creator.CreatePet(ctx, rec)
	if createErr != nil {
		var ce *CreateError
		if !errors.As(createErr, &ce) {
			ce = &CreateError{Message: DefaultCreateMessage, Err: createErr}
		}
		if strings.TrimSpace(ce.Message) == "" {
			ce.Message = DefaultCreateMessage
		}
		log.Error("pet creation failed", map[string]any{"err": createErr})
		s.record(ctx, log, userID, f.Variant, rec, "", createErr)
		return Result{}, ce
	}

	subID := s.record(ctx, log, userID, f.Variant, rec, created.ID, nil)
	log.Info("pet created", map[string]any{
		"pet_id":        created.ID,
		"submission_id": subID,
		"size":          rec.Size.String(),
		"age":           rec.Age.String(),
	})

	return Result{
		SubmissionID: subID,
		PetID:        created.ID,
		Record:       rec,
		Next:         nextFor(f.Variant, c),
	}, nil
}

// record deja constancia en el ledger. Un fallo acá no tumba una creación exitosa.
func (s *Service) record(ctx context.Context, log logger.Logger, userID string, v Variant, rec Record, petID string, cause error) string {
	if s.ledger == nil {
		return ""
	}
	sub, err := s.ledger.Record(ctx, submissions.RecordInput{
		UserID:  userID,
		Variant: string(v),
		PetType: rec.Type.String(),
		PetID:   petID,
		Err:     cause,
	})
	if err != nil {
		log.Warn("submission ledger write failed", map[string]any{"err": err})
		return ""
	}
	return sub.ID
}

func nextFor(v Variant, c EntryContext) Next {
	if v == VariantQuick {
		return Next{Screen: ScreenSitterResults, InitialData: c}
	}
	data := c
	if strings.TrimSpace(data.PetType) == "" {
		data.PetType = "Dog"
	}
	return Next{Screen: ScreenPetDetails, InitialData: data}
}
