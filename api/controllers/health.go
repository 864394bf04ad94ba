package controllers

import (
	"net/http"
	"time"

	"github.com/carnamarket/backend/api/responses"
)

// Health reports liveness for load balancers and uptime checks.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"status":    "OK",
			"message":   "Carnaval Marketplace API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
