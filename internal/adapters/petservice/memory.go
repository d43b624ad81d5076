package petservice

import (
	"context"
	"sync"

	"pet-intake/internal/domain/intake"

	"github.com/google/uuid"
)

// Memory es el PetCreator de modo dev: asigna un uuid y guarda lo recibido.
type Memory struct {
	mu      sync.RWMutex
	created map[string]intake.Record
}

func NewMemory() *Memory {
	return &Memory{created: make(map[string]intake.Record)}
}

func (m *Memory) CreatePet(ctx context.Context, rec intake.Record) (intake.CreatedPet, error) {
	if err := ctx.Err(); err != nil {
		return intake.CreatedPet{}, &intake.CreateError{Message: intake.DefaultCreateMessage, Err: err}
	}

	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[id] = rec

	return intake.CreatedPet{ID: id}, nil
}

// Get devuelve lo que se "creó" (tests / inspección en dev).
func (m *Memory) Get(id string) (intake.Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.created[id]
	return rec, ok
}
