package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestReleaseRestoreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		releaseID     string
		noClaims      bool
		mockSetup     func(m *MockReleaseRestorer)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "success",
			releaseID: "17",
			mockSetup: func(m *MockReleaseRestorer) {
				m.EXPECT().
					Restore(gomock.Any(), int64(17), int64(7)).
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:      "release not found",
			releaseID: "99",
			mockSetup: func(m *MockReleaseRestorer) {
				m.EXPECT().
					Restore(gomock.Any(), int64(99), int64(7)).
					Return(services.ErrReleaseNotFound)
			},
			expectedCode:  404,
			expectedError: "Release not found",
		},
		{
			name:          "invalid id",
			releaseID:     "abc",
			expectedCode:  400,
			expectedError: "Invalid release id",
		},
		{
			name:          "no claims",
			releaseID:     "17",
			noClaims:      true,
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name:      "internal server error",
			releaseID: "17",
			mockSetup: func(m *MockReleaseRestorer) {
				m.EXPECT().
					Restore(gomock.Any(), int64(17), int64(7)).
					Return(errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReleaseRestorer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewReleaseRestoreHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/releases/"+tt.releaseID+"/restore", nil)
			req = withChiParam(req, "id", tt.releaseID)
			if !tt.noClaims {
				req = withClaims(req, 7, "user")
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				var resp ReleaseRestoreResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "Release restored", resp.Message)
			}
		})
	}
}
