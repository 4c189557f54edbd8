package getContact

import (
	"fmt"
	"log/slog"
	"net/http"

	"courtbooker/internal/config"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/schedule"

	"github.com/go-chi/render"
)

type ContactResponse struct {
	response.Response
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

func New(log *slog.Logger, venue config.Venue) http.HandlerFunc {
	hours := fmt.Sprintf("Open daily: %s – %s",
		schedule.HourLabel(schedule.OpenHour),
		schedule.HourLabel(schedule.CloseHour),
	)

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.getContact.New"

		log.With(slog.String("op", op)).Info("contact card served")

		render.JSON(w, r, ContactResponse{
			Response: response.OK(),
			Name:     venue.Name,
			Address:  venue.Address,
			Phone:    venue.Phone,
			Email:    venue.Email,
			Hours:    hours,
		})
	}
}
