// Package httputil centralizes JSON response helpers so every handler returns
// the same error envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "userhub/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError translates a domain error into the JSON error envelope.
// Internal errors omit the description so store details never leak to
// callers; everything else carries the domain message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = messageOf(err)
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

func messageOf(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
