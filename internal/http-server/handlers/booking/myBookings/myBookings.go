package myBookings

import (
	"context"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"

	"github.com/go-chi/render"
)

type MyBookingsResponse struct {
	response.Response
	Phone    string           `json:"phone"`
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhoneBookingsGetter
type PhoneBookingsGetter interface {
	BookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}

// New serves the "my bookings" lookup: all bookings for a phone number,
// newest date first.
func New(log *slog.Logger, bookingsGetter PhoneBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myBookings.New"

		log = log.With(slog.String("op", op))

		phone := r.URL.Query().Get("phone")
		if phone == "" {
			log.Error("phone is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("phone is required"))
			return
		}

		bookings, err := bookingsGetter.BookingsByPhone(r.Context(), phone)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		responseOK(w, r, phone, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, phone string, bookings []models.Booking) {
	render.JSON(w, r, MyBookingsResponse{
		Response: response.OK(),
		Phone:    phone,
		Bookings: bookings,
	})
}
