package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/yukikurage/project-dashboard/internal/config"
)

// CORS lets the browser dashboard call the API from another origin.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		MaxAge: 300,
	}

	// Credentials cannot be combined with a wildcard origin
	if len(cfg.AllowedOrigins) > 0 && cfg.AllowedOrigins[0] != "*" {
		options.AllowCredentials = true
	}

	return cors.Handler(options)
}
