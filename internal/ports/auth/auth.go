package auth

import "context"

// Claims es la identidad de la sesión. UserID es lo que viaja como userId
// al servicio de mascotas.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// AuthVerifier verifica un bearer token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
