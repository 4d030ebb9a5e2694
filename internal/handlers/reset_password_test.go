package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		reqBody       ResetPasswordRequest
		mockSetup     func(m *MockPasswordResetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			reqBody: ResetPasswordRequest{
				Email:       "alice@example.com",
				NewPassword: "newsecret",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetPassword(gomock.Any(), "alice@example.com", "newsecret").
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name: "unknown email",
			reqBody: ResetPasswordRequest{
				Email:       "ghost@example.com",
				NewPassword: "newsecret",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetPassword(gomock.Any(), "ghost@example.com", "newsecret").
					Return(services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name: "missing new password",
			reqBody: ResetPasswordRequest{
				Email: "alice@example.com",
			},
			expectedCode:  400,
			expectedError: "Email and new password are required",
		},
		{
			name: "internal server error",
			reqBody: ResetPasswordRequest{
				Email:       "alice@example.com",
				NewPassword: "newsecret",
			},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetPassword(gomock.Any(), "alice@example.com", "newsecret").
					Return(errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPasswordResetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetPasswordHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/reset_password", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				var resp ResetPasswordResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "Password updated successfully", resp.Message)
			}
		})
	}
}
