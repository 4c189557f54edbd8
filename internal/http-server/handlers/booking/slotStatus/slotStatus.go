package slotStatus

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/schedule"

	"github.com/go-chi/render"
)

type Slot struct {
	Hour   int             `json:"hour"`
	Label  string          `json:"label"`
	Status schedule.Status `json:"status"`
}

type SlotStatusResponse struct {
	response.Response
	Date      string `json:"date"`
	OpenHour  int    `json:"open_hour"`
	CloseHour int    `json:"close_hour"`
	Slots     []Slot `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// New derives the per-hour status map for a date. The optional start/end
// query params mark the caller's selected range; without them no hour is
// reported as selected.
func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.slotStatus.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		if date == "" {
			log.Error("date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date is required"))
			return
		}

		startHour, ok := hourParam(r, "start")
		if !ok {
			log.Error("invalid start hour")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start hour"))
			return
		}

		endHour, ok := hourParam(r, "end")
		if !ok {
			log.Error("invalid end hour")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid end hour"))
			return
		}

		bookings, err := bookingsGetter.BookingsByDate(r.Context(), date)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		status := schedule.SlotStatuses(bookings, startHour, endHour)

		slots := make([]Slot, 0, len(status))
		for h := schedule.OpenHour; h < schedule.CloseHour; h++ {
			slots = append(slots, Slot{
				Hour:   h,
				Label:  schedule.HourLabel(h) + " – " + schedule.HourLabel(h+1),
				Status: status[h],
			})
		}

		log.Info("slot statuses derived", slog.String("date", date))

		render.JSON(w, r, SlotStatusResponse{
			Response:  response.OK(),
			Date:      date,
			OpenHour:  schedule.OpenHour,
			CloseHour: schedule.CloseHour,
			Slots:     slots,
		})
	}
}

// hourParam parses an optional whole-hour query param; absent means 0, which
// together with an absent pair makes an empty selection.
func hourParam(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	h, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return h, true
}
