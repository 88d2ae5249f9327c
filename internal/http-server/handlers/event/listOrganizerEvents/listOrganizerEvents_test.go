package listOrganizerEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"festBooker/internal/http-server/handlers/event/listOrganizerEvents/mocks"
	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/logger/handlers/slogdiscard"
	"festBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListOrganizerEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	organizer := models.User{ID: 2, Role: models.RoleOrganizer, IsApproved: true}

	testCases := []struct {
		name           string
		anonymous      bool
		mockSetup      func(m *mocks.OrganizerEventsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Own events",
			mockSetup: func(m *mocks.OrganizerEventsLister) {
				m.On("ListOrganizerEvents", mock.Anything, int64(2)).Return([]models.EventView{
					{Event: models.Event{ID: 1, Title: "Past Workshop", OrganizerID: 2}},
					{Event: models.Event{ID: 4, Title: "Hackathon", OrganizerID: 2}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"title":"Past Workshop"`)
				assert.Contains(t, body, `"title":"Hackathon"`)
			},
		},
		{
			name: "Nothing scheduled",
			mockSetup: func(m *mocks.OrganizerEventsLister) {
				m.On("ListOrganizerEvents", mock.Anything, int64(2)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name:           "Anonymous",
			anonymous:      true,
			mockSetup:      func(m *mocks.OrganizerEventsLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"not authenticated"}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.OrganizerEventsLister) {
				m.On("ListOrganizerEvents", mock.Anything, int64(2)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewOrganizerEventsLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/api/organizer/events", nil)
			if !tc.anonymous {
				req = req.WithContext(mwauth.WithUser(req.Context(), organizer))
			}
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
