package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		reqBody       LoginRequest
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
		expectedToken string
		rawBody       bool
	}{
		{
			name: "success",
			reqBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return("token123", &models.User{ID: 1, Email: "alice@example.com", Role: "user"}, nil)
			},
			expectedCode:  200,
			expectedToken: "token123",
		},
		{
			name: "invalid credentials",
			reqBody: LoginRequest{
				Email:    "bob@example.com",
				Password: "wrong",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "bob@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode:  401,
			expectedError: "Invalid email or password",
		},
		{
			name: "missing password",
			reqBody: LoginRequest{
				Email: "bob@example.com",
			},
			expectedCode:  400,
			expectedError: "Email and password are required",
		},
		{
			name: "internal server error",
			reqBody: LoginRequest{
				Email:    "carol@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "carol@example.com", "secret").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedToken, resp.Token)
				assert.NotNil(t, resp.User)
			}
		})
	}
}
