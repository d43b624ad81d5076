package capabilities

import "context"

// Capabilities conocidas por este servicio.
const (
	PetsCreate = "pets:create"
)

// Resolver responde si un usuario tiene una capability según su plan.
type Resolver interface {
	Has(ctx context.Context, userID string, capability string) (bool, error)
}
