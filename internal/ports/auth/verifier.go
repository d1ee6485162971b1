package auth

import "context"

// Claims es lo que los handlers necesitan del usuario autenticado.
// UserID identifica al dueño de los animales; Email y TenantID pueden venir vacíos.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// AuthVerifier valida un bearer token. Implementación: adapters/auth/jwtauth.
// Con verifier nil el middleware acepta X-Debug-User-ID.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
