package getProfile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/render"
)

type ProfileResponse struct {
	response.Response
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	Profile(ctx context.Context, deviceID string) (models.Profile, error)
}

// New returns the device's remembered name and phone, read at screen mount to
// prefill the booking form. An unknown device gets an empty profile.
func New(log *slog.Logger, profiles ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getProfile.New"

		log = log.With(slog.String("op", op))

		deviceID := r.Header.Get("X-Device-ID")
		if deviceID == "" {
			log.Error("device id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("device id is required"))
			return
		}

		profile, err := profiles.Profile(r.Context(), deviceID)
		if err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
			log.Error("failed to get profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get profile"))
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Name:     profile.Name,
			Phone:    profile.Phone,
		})
	}
}
