// Package handlers holds the JSON plumbing shared by the endpoint handlers.
// Each endpoint owns its response shapes: the wire format is pinned by the
// frontend and differs between endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// maxBodySize caps request bodies; the wizard only ever posts small JSON
const maxBodySize = 64 << 10

// ErrInvalidBody is returned by DecodeJSON for unreadable request bodies
var ErrInvalidBody = errors.New("invalid request body")

// DecodeJSON parses the request body into dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// RespondJSON writes a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// The header is already out; an encode failure here can only be logged
	// by the caller's middleware.
	_ = json.NewEncoder(w).Encode(payload)
}
