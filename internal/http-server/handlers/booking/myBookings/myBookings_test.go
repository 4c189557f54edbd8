package myBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbooker/internal/http-server/handlers/booking/myBookings/mocks"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMyBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.PhoneBookingsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/bookings/my?phone=555-0101",
			mockSetup: func(m *mocks.PhoneBookingsGetter) {
				m.On("BookingsByPhone", mock.Anything, "555-0101").Return([]models.Booking{
					{ID: "b2", Date: "2024-01-03", StartMinutes: 420, EndMinutes: 480, StartTime: "07:00", EndTime: "08:00", Name: "Alice", Phone: "555-0101"},
					{ID: "b1", Date: "2024-01-02", StartMinutes: 540, EndMinutes: 600, StartTime: "09:00", EndTime: "10:00", Name: "Alice", Phone: "555-0101"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"phone":"555-0101"`)
				assert.Contains(t, body, `"id":"b2"`)
				assert.Contains(t, body, `"id":"b1"`)
			},
		},
		{
			name: "No bookings",
			url:  "/bookings/my?phone=555-0199",
			mockSetup: func(m *mocks.PhoneBookingsGetter) {
				m.On("BookingsByPhone", mock.Anything, "555-0199").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","phone":"555-0199","bookings":null}`,
		},
		{
			name:           "Missing phone",
			url:            "/bookings/my",
			mockSetup:      func(m *mocks.PhoneBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"phone is required"}`,
		},
		{
			name: "Store failure",
			url:  "/bookings/my?phone=555-0101",
			mockSetup: func(m *mocks.PhoneBookingsGetter) {
				m.On("BookingsByPhone", mock.Anything, "555-0101").Return(nil, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getterMock := mocks.NewPhoneBookingsGetter(t)
			tc.mockSetup(getterMock)

			handler := New(logger, getterMock)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
