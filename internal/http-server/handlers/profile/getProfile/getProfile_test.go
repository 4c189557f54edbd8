package getProfile

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbooker/internal/http-server/handlers/profile/getProfile/mocks"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		deviceID       string
		mockSetup      func(m *mocks.ProfileGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Known device",
			deviceID: "device-1",
			mockSetup: func(m *mocks.ProfileGetter) {
				m.On("Profile", mock.Anything, "device-1").Return(models.Profile{
					DeviceID: "device-1",
					Name:     "Alice",
					Phone:    "555-0101",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","name":"Alice","phone":"555-0101"}`,
		},
		{
			name:     "Unknown device gets empty profile",
			deviceID: "device-2",
			mockSetup: func(m *mocks.ProfileGetter) {
				m.On("Profile", mock.Anything, "device-2").Return(models.Profile{}, storage.ErrProfileNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","name":"","phone":""}`,
		},
		{
			name:           "Missing device id",
			deviceID:       "",
			mockSetup:      func(m *mocks.ProfileGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"device id is required"}`,
		},
		{
			name:     "Store failure",
			deviceID: "device-1",
			mockSetup: func(m *mocks.ProfileGetter) {
				m.On("Profile", mock.Anything, "device-1").Return(models.Profile{}, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get profile"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getterMock := mocks.NewProfileGetter(t)
			tc.mockSetup(getterMock)

			handler := New(logger, getterMock)

			req, err := http.NewRequest(http.MethodGet, "/profile", nil)
			require.NoError(t, err)
			if tc.deviceID != "" {
				req.Header.Set("X-Device-ID", tc.deviceID)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
