package addBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/schedule"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartHour int    `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int    `json:"end_hour" validate:"min=0,max=24"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type BookingResponse struct {
	response.Response
	BookingID string `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangeNotifier
type ChangeNotifier interface {
	Notify(booking models.Booking)
}

// New records an offline booking taken over the phone or in person. Runs the
// same validation chain as self-service; the record is tagged with the admin
// source.
func New(log *slog.Logger, bookings BookingSaver, notifier ChangeNotifier, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.addBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		existing, err := bookings.BookingsByDate(r.Context(), req.Date)
		if err != nil {
			log.Error("failed to load bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load bookings"))
			return
		}

		booking, err := schedule.NewBooking(req.Name, req.Phone, req.Date, req.StartHour, req.EndHour, existing, models.SourceAdmin, now())
		if err != nil {
			log.Error("booking rejected", sl.Err(err))

			if errors.Is(err, schedule.ErrSlotTaken) {
				render.Status(r, http.StatusConflict)
			} else {
				render.Status(r, http.StatusBadRequest)
			}
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		id, err := bookings.CreateBooking(r.Context(), booking)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}
		booking.ID = id

		notifier.Notify(booking)

		log.Info("offline booking added", slog.String("booking_id", id))

		render.JSON(w, r, BookingResponse{
			Response:  response.OK(),
			BookingID: id,
		})
	}
}
