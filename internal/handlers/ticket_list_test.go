package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTicketListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		noClaims      bool
		mockSetup     func(m *MockTicketLister)
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "success",
			mockSetup: func(m *MockTicketLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.TicketDB{
						{ID: 1, UserID: 7, Subject: "Payout delay", Status: models.TicketOpen},
						{ID: 2, UserID: 7, Subject: "Wrong artist name", Status: models.TicketClosed},
					}, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockTicketLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.TicketDB{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name:          "no claims",
			noClaims:      true,
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockTicketLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTicketLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTicketListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
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
				var resp TicketListResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Tickets, tt.expectedLen)
			}
		})
	}
}
