package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carnamarket/backend/api/middleware"
	"github.com/carnamarket/backend/api/responses"
	"github.com/carnamarket/backend/api/validators"
	ordersvc "github.com/carnamarket/backend/internal/orders"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/logger"
)

type createOrderRequest struct {
	ProductID       uuid.UUID `json:"productId" validate:"required"`
	PaymentMethod   string    `json:"paymentMethod" validate:"required"`
	ShippingAddress string    `json:"shippingAddress" validate:"required,min=5"`
}

// CreateOrder places an order for the authenticated buyer.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), middleware.UserIDFromContext(r.Context()), ordersvc.CreateOrderInput{
			ProductID:       payload.ProductID,
			PaymentMethod:   payload.PaymentMethod,
			ShippingAddress: payload.ShippingAddress,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"order":   order,
		})
	}
}

// ListOrders returns the caller's orders, as buyer or seller.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orders, err := svc.ListMine(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(orders),
			"orders":  orders,
		})
	}
}

// GetOrder returns one order, participants only.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		order, err := svc.Get(r.Context(), middleware.UserIDFromContext(r.Context()), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"order":   order,
		})
	}
}
