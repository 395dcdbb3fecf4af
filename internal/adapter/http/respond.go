package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-desk/internal/core/port"
	"campaign-desk/internal/core/readiness"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// publishBlockedResponse is the body of a refused publish.
type publishBlockedResponse struct {
	errorResponse
	Check  readiness.PublishingCheck `json:"check"`
	Groups []readiness.ErrorGroup    `json:"groups"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUseCaseError maps use case errors to HTTP responses. Unexpected errors
// are logged and reported as 500.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var blocked *port.PublishBlockedError
	switch {
	case errors.As(err, &blocked):
		status, code := http.StatusUnprocessableEntity, "validation_failed"
		if blocked.Check.Blocker() == readiness.BlockerPaymentSetup {
			status, code = http.StatusPaymentRequired, "payment_method_required"
		}
		writeJSON(w, status, publishBlockedResponse{
			errorResponse: errorResponse{Error: code, Message: blocked.Error()},
			Check:         blocked.Check,
			Groups:        blocked.Check.Grouped(),
		})
	case errors.Is(err, port.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Campaign not found")
	case errors.Is(err, port.ErrUnknownSection):
		writeError(w, http.StatusNotFound, "unknown_section", err.Error())
	case errors.Is(err, port.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.Is(err, port.ErrNotEditable):
		writeError(w, http.StatusConflict, "not_editable", err.Error())
	case errors.Is(err, port.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, port.ErrStatusConflict):
		writeError(w, http.StatusConflict, "status_conflict", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "unavailable", "Request was cancelled")
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal error")
	}
}
