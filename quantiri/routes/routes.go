// quantiri/routes/routes.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"quantiri/quantiri/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses. Validation
// errors carry their field-level issues into the body; anything
// unrecognized is a generic 500 with the underlying message.
func writeError(w http.ResponseWriter, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  types.ErrInvalidInput.Error(),
			"issues": verr.Issues,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrEmailTaken),
		errors.Is(err, types.ErrVerificationInvalid),
		errors.Is(err, types.ErrVerificationExpired):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrUnauthorized),
		errors.Is(err, types.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrEmailNotVerified):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrSessionNotFound),
		errors.Is(err, types.ErrDatasetNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
