package cancelBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbooker/internal/http-server/handlers/admin/cancelBooking/mocks"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deleted := models.Booking{
		ID:    "b1",
		Date:  "2024-01-02",
		Phone: "555-0101",
	}

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(bookings *mocks.BookingDeleter, notifier *mocks.ChangeNotifier)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "b1",
			mockSetup: func(bookings *mocks.BookingDeleter, notifier *mocks.ChangeNotifier) {
				bookings.On("DeleteBooking", mock.Anything, "b1").Return(deleted, nil)
				notifier.On("Notify", deleted).Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			mockSetup: func(bookings *mocks.BookingDeleter, notifier *mocks.ChangeNotifier) {
				bookings.On("DeleteBooking", mock.Anything, "missing").Return(models.Booking{}, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Store failure is reported",
			bookingID: "b1",
			mockSetup: func(bookings *mocks.BookingDeleter, notifier *mocks.ChangeNotifier) {
				bookings.On("DeleteBooking", mock.Anything, "b1").Return(models.Booking{}, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleterMock := mocks.NewBookingDeleter(t)
			notifierMock := mocks.NewChangeNotifier(t)
			tc.mockSetup(deleterMock, notifierMock)

			handler := New(logger, deleterMock, notifierMock)

			router := chi.NewRouter()
			router.Delete("/admin/bookings/{id}", handler)

			req, err := http.NewRequest(http.MethodDelete, "/admin/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestCancelBookingHandler_MissingID(t *testing.T) {
	t.Parallel()

	deleterMock := mocks.NewBookingDeleter(t)
	notifierMock := mocks.NewChangeNotifier(t)

	handler := New(slogdiscard.NewDiscardLogger(), deleterMock, notifierMock)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"booking id is required"}`, rr.Body.String())
}
