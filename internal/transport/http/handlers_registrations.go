package httptransport

import (
	"context"
	"net/http"

	"filmgate/internal/platform/middleware"
	regModel "filmgate/internal/registration/models"
	"filmgate/pkg/platform/httputil"
)

// RegistrationService creates customer registrations.
type RegistrationService interface {
	Register(ctx context.Context, name, creditCardNumber string) (regModel.Registration, error)
}

// handleCreateRegistration serves POST /registrations. Card shape validation
// happens here; the service enforces uniqueness.
func (h *Handler) handleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeRegistrationRequest(r.Body)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	reg, err := h.registrations.Register(ctx, req.Name, req.CreditCardNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "registration rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"token": reg.Token})
}
