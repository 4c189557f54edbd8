package watchBookings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/subscription"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsStreamer
type BookingsStreamer interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	BookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}

type Subscriber interface {
	Subscribe(f subscription.Filter) (<-chan struct{}, func())
}

// New streams booking snapshots over server-sent events: one on connect and
// one per change matching the filter. Exactly one of date or phone scopes the
// stream, mirroring the two live queries of the booking screens. The
// subscription is released when the client disconnects.
func New(log *slog.Logger, bookings BookingsStreamer, subs Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.watchBookings.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		phone := r.URL.Query().Get("phone")

		if (date == "") == (phone == "") {
			log.Error("exactly one of date or phone is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("exactly one of date or phone is required"))
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			log.Error("streaming unsupported")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("streaming unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ch, cancel := subs.Subscribe(subscription.Filter{Date: date, Phone: phone})
		defer cancel()

		snapshot := func() ([]models.Booking, error) {
			if date != "" {
				return bookings.BookingsByDate(r.Context(), date)
			}
			return bookings.BookingsByPhone(r.Context(), phone)
		}

		push := func() bool {
			list, err := snapshot()
			if err != nil {
				log.Error("failed to load snapshot", sl.Err(err))
				return false
			}

			payload, err := json.Marshal(list)
			if err != nil {
				log.Error("failed to marshal snapshot", sl.Err(err))
				return false
			}

			if _, err = fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				log.Error("failed to write event", sl.Err(err))
				return false
			}
			flusher.Flush()
			return true
		}

		if !push() {
			return
		}

		log.Info("watch started", slog.String("date", date), slog.String("phone", phone))

		for {
			select {
			case <-r.Context().Done():
				log.Info("watch closed")
				return
			case <-ch:
				if !push() {
					return
				}
			}
		}
	}
}
