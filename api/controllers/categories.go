package controllers

import (
	"net/http"

	"github.com/carnamarket/backend/api/responses"
	"github.com/carnamarket/backend/internal/categories"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/logger"
)

// ListCategories returns every category, ordered by name.
func ListCategories(repo *categories.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"categories": categories.FromModels(all),
		})
	}
}
