package exportBookings

import (
	"context"
	"log/slog"
	"net/http"

	"courtbooker/internal/export"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// New serves the day's bookings as a downloadable CSV file.
func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportBookings.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		if date == "" {
			log.Error("date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date is required"))
			return
		}

		bookings, err := bookingsGetter.BookingsByDate(r.Context(), date)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(date)+`"`)

		if err = export.WriteCSV(w, bookings); err != nil {
			// Headers are already out; nothing left to do but log.
			log.Error("failed to write csv", sl.Err(err))
			return
		}

		log.Info("bookings exported", slog.String("date", date), slog.Int("count", len(bookings)))
	}
}
