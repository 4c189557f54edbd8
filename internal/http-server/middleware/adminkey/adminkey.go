package adminkey

import (
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

const Header = "X-Admin-Key"

// New gates admin routes on the shared key sent in the X-Admin-Key header.
// Plaintext comparison, no sessions or tokens; the client-side "admin flag"
// only decides whether to send the key at all.
func New(log *slog.Logger, adminKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/adminkey"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(Header) != adminKey {
				log.Warn("admin request with invalid key",
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid admin key"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
