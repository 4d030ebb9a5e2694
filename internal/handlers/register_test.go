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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		reqBody       RegisterRequest
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
		rawBody       bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Email:    "john@example.com",
				Password: "secret",
				Name:     "John",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret", "John", "").
					Return(&models.User{ID: 1, Email: "john@example.com", Name: "John", Role: "user"}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "user already exists",
			reqBody: RegisterRequest{
				Email:    "alice@example.com",
				Password: "pass",
				Name:     "Alice",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "pass", "Alice", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  400,
			expectedError: "User already exists",
		},
		{
			name: "missing fields",
			reqBody: RegisterRequest{
				Email: "bob@example.com",
			},
			expectedCode:  400,
			expectedError: "Email, password and name are required",
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Email:    "bob@example.com",
				Password: "pass",
				Name:     "Bob",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "pass", "Bob", "").
					Return(nil, errors.New("database failure"))
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
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				var resp RegisterResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.True(t, resp.Success)
				assert.NotNil(t, resp.User)
				assert.Equal(t, "john@example.com", resp.User.Email)
			}
		})
	}
}
