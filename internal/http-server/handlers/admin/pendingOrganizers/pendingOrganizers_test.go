package pendingOrganizers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"festBooker/internal/http-server/handlers/admin/pendingOrganizers/mocks"
	"festBooker/internal/lib/logger/handlers/slogdiscard"
	"festBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPendingOrganizersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.PendingLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Pending organizers",
			mockSetup: func(m *mocks.PendingLister) {
				m.On("ListPendingOrganizers", mock.Anything).Return([]models.User{
					{ID: 4, Name: "Robotics Club", Email: "robotics@spit.com", PasswordHash: "h", Role: models.RoleOrganizer},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","organizers":[{"id":4,"name":"Robotics Club","email":"robotics@spit.com",` +
				`"role":"organizer","is_approved":false}]}`,
		},
		{
			name: "None pending",
			mockSetup: func(m *mocks.PendingLister) {
				m.On("ListPendingOrganizers", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","organizers":[]}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.PendingLister) {
				m.On("ListPendingOrganizers", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list pending organizers"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewPendingLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/pending-organizers", nil)
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
