package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CARE-UiT/Reflectometer/internal/common"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: message})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

// writeServiceError maps service sentinels onto HTTP statuses. Denied and
// not-found collapse into the same 404 so responses never reveal whether a
// resource exists under someone else's account.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrRefreshTokenExpired):
		writeUnauthorized(w)
	case errors.Is(err, common.ErrDenied) || errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found"})
	case errors.Is(err, common.ErrValidation):
		writeBadRequest(w, err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "conflict"})
	case errors.Is(err, common.ErrPayloadTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "payload_too_large", Message: "use the blob upload endpoint for large payloads"})
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
