package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/carnamarket/backend/pkg/config"
)

// CORS returns middleware allowing the configured frontend origin with
// credentials, the way a cookie-less SPA plus Authorization header needs.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	if url := strings.TrimSpace(cfg.FrontendURL); url != "" {
		origins = []string{url}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
