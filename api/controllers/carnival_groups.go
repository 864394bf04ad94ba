package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/api/responses"
	"github.com/carnamarket/backend/internal/groups"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/logger"
)

// ListCarnivalGroups returns every group, ordered by name.
func ListCarnivalGroups(repo *groups.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list carnival groups"))
			return
		}

		dtos := groups.FromModels(all)
		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(dtos),
			"groups":  dtos,
		})
	}
}

// GetCarnivalGroup returns one group with its active members.
func GetCarnivalGroup(repo *groups.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid group id"))
			return
		}

		group, err := repo.FindByIDWithActiveMembers(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Carnival group not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carnival group"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"group":   groups.FromModel(group),
		})
	}
}
