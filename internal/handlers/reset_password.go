package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	// example: artist@example.com
	Email string `json:"email"`

	// New password
	// required: true
	// example: newsecret123
	NewPassword string `json:"new_password"`
}

// ResetPasswordResponse represents a successful password reset response
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Success message
	// example: Password updated successfully
	Message string `json:"message"`
}

// ResetPasswordErrorResponse represents an error response for a password reset
// swagger:model ResetPasswordErrorResponse
type ResetPasswordErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewResetPasswordHandler returns an HTTP handler for password reset.
// @Summary Reset password
// @Description Overwrites the stored password hash for a known email
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Password reset request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password updated"
// @Failure 400 {object} handlers.ResetPasswordErrorResponse "Missing fields"
// @Failure 404 {object} handlers.ResetPasswordErrorResponse "Unknown email"
// @Router /auth/reset_password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.Email) == "" || req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "Email and new password are required"})
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{
			Success: true,
			Message: "Password updated successfully",
		})
	}
}
