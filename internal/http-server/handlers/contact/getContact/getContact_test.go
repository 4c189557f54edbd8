package getContact

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbooker/internal/config"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestGetContactHandler(t *testing.T) {
	t.Parallel()

	venue := config.Venue{
		Name:    "RJ Pickleball Club",
		Address: "123 Court Street, Your City, 12345",
		Phone:   "+1 123 456 7890",
		Email:   "info@rjpickleball.com",
	}

	handler := New(slogdiscard.NewDiscardLogger(), venue)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status":"OK",
		"name":"RJ Pickleball Club",
		"address":"123 Court Street, Your City, 12345",
		"phone":"+1 123 456 7890",
		"email":"info@rjpickleball.com",
		"hours":"Open daily: 6 AM – 10 PM"
	}`, rr.Body.String())
}
