package cancelBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(ctx context.Context, id string) (models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangeNotifier
type ChangeNotifier interface {
	Notify(booking models.Booking)
}

// New cancels a booking by deleting its document. Delete failures are
// reported to the admin instead of vanishing into developer diagnostics.
func New(log *slog.Logger, bookings BookingDeleter, notifier ChangeNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.cancelBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		booking, err := bookings.DeleteBooking(r.Context(), id)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel booking"))
			return
		}

		notifier.Notify(booking)

		log.Info("booking cancelled")

		render.JSON(w, r, CancelResponse{
			Response: response.OK(),
		})
	}
}
