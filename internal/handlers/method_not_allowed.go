package handlers

import (
	"encoding/json"
	"net/http"
)

// MethodNotAllowedErrorResponse represents the body of a 405 response
// swagger:model MethodNotAllowedErrorResponse
type MethodNotAllowedErrorResponse struct {
	// Error message
	// example: Method not allowed
	Error string `json:"error"`
}

// NewMethodNotAllowedHandler returns the handler served when a route
// exists but does not accept the request method, so rejections carry
// the same JSON error envelope as the rest of the API.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(MethodNotAllowedErrorResponse{Error: "Method not allowed"})
	}
}
