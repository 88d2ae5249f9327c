package listBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festBooker/internal/http-server/handlers/booking/listBookings/mocks"
	"festBooker/internal/http-server/middleware/mwauth"
	"festBooker/internal/lib/logger/handlers/slogdiscard"
	"festBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	attendee := models.User{ID: 3, Role: models.RoleAttendee, IsApproved: true}
	bookedAt := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	bookings := []models.BookingView{
		{
			Booking: models.Booking{ID: 8, AttendeeID: 3, EventID: 2, BookingTime: bookedAt.Add(time.Hour), Status: models.BookingConfirmed},
			Event:   models.EventView{Event: models.Event{ID: 2, Title: "Quiz"}},
		},
		{
			Booking: models.Booking{ID: 5, AttendeeID: 3, EventID: 1, BookingTime: bookedAt, Status: models.BookingConfirmed},
			Event:   models.EventView{Event: models.Event{ID: 1, Title: "Hackathon"}},
		},
	}

	testCases := []struct {
		name           string
		anonymous      bool
		mockSetup      func(m *mocks.BookingsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListAttendeeBookings", mock.Anything, int64(3)).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Bookings, 2)
				assert.Equal(t, int64(8), resp.Bookings[0].ID)
				assert.Equal(t, "Hackathon", resp.Bookings[1].Event.Title)
			},
		},
		{
			name: "No bookings",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListAttendeeBookings", mock.Anything, int64(3)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name:           "Anonymous",
			anonymous:      true,
			mockSetup:      func(m *mocks.BookingsLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"not authenticated"}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListAttendeeBookings", mock.Anything, int64(3)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewBookingsLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if !tc.anonymous {
				req = req.WithContext(mwauth.WithUser(req.Context(), attendee))
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
