package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	filmModel "filmgate/internal/catalog/models"
	orderModel "filmgate/internal/order/models"
	"filmgate/internal/platform/middleware"
	regModel "filmgate/internal/registration/models"
	dErrors "filmgate/pkg/domain-errors"
	"filmgate/pkg/platform/httputil"
)

// OwnershipService is the order lifecycle orchestrator the handlers drive.
type OwnershipService interface {
	IdentityResolver
	PlaceOrder(ctx context.Context, reg regModel.Registration, filmID int, format filmModel.Format) (orderModel.Order, error)
	ChangeFormat(ctx context.Context, reg regModel.Registration, orderID string, format filmModel.Format) error
	GetOrder(ctx context.Context, reg regModel.Registration, orderID string) (orderModel.Order, error)
	ListOrders(ctx context.Context, reg regModel.Registration) []orderModel.Order
	IsOwned(ctx context.Context, reg *regModel.Registration, filmID int) bool
}

// requireRegistration fetches the identity the RequireIdentity middleware
// stored. A miss means the route is wired without the middleware.
func (h *Handler) requireRegistration(w http.ResponseWriter, r *http.Request) (regModel.Registration, bool) {
	reg := RegistrationFrom(r.Context())
	if reg == nil {
		h.logger.ErrorContext(r.Context(), "registration missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return regModel.Registration{}, false
	}
	return *reg, true
}

// handleListOrders serves GET /orders.
func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.requireRegistration(w, r)
	if !ok {
		return
	}

	orders := h.ownership.ListOrders(r.Context(), reg)
	if orders == nil {
		orders = []orderModel.Order{}
	}
	httputil.WriteJSON(w, http.StatusOK, orders)
}

// handleGetOrder serves GET /orders/{orderID}.
func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.requireRegistration(w, r)
	if !ok {
		return
	}

	order, err := h.ownership.GetOrder(r.Context(), reg, chi.URLParam(r, "orderID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

// handleCreateOrder serves POST /orders.
func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.requireRegistration(w, r)
	if !ok {
		return
	}

	filmID, format, err := decodeCreateOrderRequest(r.Body)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	order, err := h.ownership.PlaceOrder(r.Context(), reg, filmID, format)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"id": order.ID})
}

// handleChangeFormat serves PATCH /orders/{orderID}. Only the format field is
// mutable; film and owner are fixed at creation.
func (h *Handler) handleChangeFormat(w http.ResponseWriter, r *http.Request) {
	reg, ok := h.requireRegistration(w, r)
	if !ok {
		return
	}

	format, err := decodeChangeFormatRequest(r.Body)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.ownership.ChangeFormat(r.Context(), reg, chi.URLParam(r, "orderID"), format); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
