package login

import (
	"errors"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Key string `json:"key" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Admin bool `json:"admin"`
}

// New verifies the shared admin key. This is a plaintext comparison, not an
// authentication system: the client stores the result as a local flag with no
// expiry and sends the key back on each admin request.
func New(log *slog.Logger, adminKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if req.Key != adminKey {
			log.Error("invalid admin key")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid key"))
			return
		}

		log.Info("admin logged in")

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			Admin:    true,
		})
	}
}
