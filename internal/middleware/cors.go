package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS para el cliente mobile/web. Sin origins configurados no se monta nada.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", DebugUserHeader},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}
