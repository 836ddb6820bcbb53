package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORSMiddleware creates a CORS middleware for the given origins.
// "*" allows every origin; credentials are only allowed for an explicit origin list.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	if wildcard {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "Origin", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: !wildcard,
		MaxAge:           3600,
	})
	return c.Handler
}
