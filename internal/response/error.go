package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yash314314/finance-tracking/internal/errs"
	"github.com/yash314314/finance-tracking/pkg/logger"
)

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.writeError(w, r, status, ErrorResponse{Code: code, Message: message})
}

func (h *responseHandler) writeError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", resp.Code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.DuplicateBudgetError:
		log.Warn("duplicate budget", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "already_exists", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.writeError(w, r, http.StatusBadRequest, ErrorResponse{
			Code:    "invalid_input",
			Message: e.Message,
			Fields:  e.Fields,
		})

	case *errs.StoreUnavailableError:
		log.Error("store unavailable", "error", e.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "store_unavailable",
			"Storage temporarily unavailable")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
