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

func TestTicketUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	answer := "The payout was re-issued today."

	tests := []struct {
		name          string
		ticketID      string
		reqBody       TicketUpdateRequest
		mockSetup     func(m *MockTicketUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name:     "success",
			ticketID: "42",
			reqBody: TicketUpdateRequest{
				Status:        models.TicketClosed,
				AdminResponse: &answer,
			},
			mockSetup: func(m *MockTicketUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(42), models.TicketClosed, &answer).
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name:     "ticket not found",
			ticketID: "99",
			reqBody:  TicketUpdateRequest{Status: models.TicketClosed},
			mockSetup: func(m *MockTicketUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(99), models.TicketClosed, (*string)(nil)).
					Return(services.ErrTicketNotFound)
			},
			expectedCode:  404,
			expectedError: "Ticket not found",
		},
		{
			name:          "missing status",
			ticketID:      "42",
			reqBody:       TicketUpdateRequest{},
			expectedCode:  400,
			expectedError: "Status is required",
		},
		{
			name:          "invalid id",
			ticketID:      "abc",
			reqBody:       TicketUpdateRequest{Status: models.TicketClosed},
			expectedCode:  400,
			expectedError: "Invalid ticket id",
		},
		{
			name:     "internal server error",
			ticketID: "42",
			reqBody:  TicketUpdateRequest{Status: models.TicketClosed},
			mockSetup: func(m *MockTicketUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(42), models.TicketClosed, (*string)(nil)).
					Return(errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTicketUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTicketUpdateHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPut, "/tickets/"+tt.ticketID, bytes.NewBuffer(bodyBytes))
			req = withChiParam(req, "id", tt.ticketID)
			req = withClaims(req, 1, "admin")

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				var resp TicketUpdateResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
			}
		})
	}
}
