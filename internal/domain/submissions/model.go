package submissions

import "time"

type Status string

const (
	StatusCreated Status = "created"
	StatusFailed  Status = "failed"
)

// Submission registra el resultado de un envío al servicio de mascotas.
// No guarda el record canónico: solo quién, qué pantalla y cómo terminó.
type Submission struct {
	ID     string
	UserID string

	Variant string // details | quick
	PetType string // DOG | CAT

	PetID  string // id devuelto por el upstream (si lo hubo)
	Status Status
	Error  string

	CreatedAt time.Time
}
