package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtbooker/internal/config"
	"courtbooker/internal/http-server/handlers/admin/addBooking"
	"courtbooker/internal/http-server/handlers/admin/cancelBooking"
	"courtbooker/internal/http-server/handlers/admin/exportBookings"
	"courtbooker/internal/http-server/handlers/admin/login"
	"courtbooker/internal/http-server/handlers/booking/createBooking"
	"courtbooker/internal/http-server/handlers/booking/listBookings"
	"courtbooker/internal/http-server/handlers/booking/myBookings"
	"courtbooker/internal/http-server/handlers/booking/slotStatus"
	"courtbooker/internal/http-server/handlers/booking/watchBookings"
	"courtbooker/internal/http-server/handlers/contact/getContact"
	"courtbooker/internal/http-server/handlers/profile/getProfile"
	"courtbooker/internal/http-server/middleware/adminkey"
	"courtbooker/internal/http-server/middleware/mwlogger"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/handlers/slogpretty"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/storage/mongodb"
	"courtbooker/internal/subscription"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting court booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := mongodb.InitDB(&cfg.Mongo, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.EnsureIndexes(context.Background()); err != nil {
		log.Warn("failed to ensure indexes", sl.Err(err))
	}

	hub := subscription.NewHub()
	now := time.Now

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Get("/", listBookings.New(log, storage))
		r.Post("/", createBooking.New(log, storage, storage, hub, now))
		r.Get("/my", myBookings.New(log, storage))
		r.Get("/watch", watchBookings.New(log, storage, hub))
	})

	router.Get("/availability", slotStatus.New(log, storage))
	router.Get("/contact", getContact.New(log, cfg.Venue))
	router.Get("/profile", getProfile.New(log, storage))

	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", login.New(log, cfg.AdminKey))

		r.Group(func(r chi.Router) {
			r.Use(adminkey.New(log, cfg.AdminKey))

			r.Post("/bookings", addBooking.New(log, storage, hub, now))
			r.Delete("/bookings/{id}", cancelBooking.New(log, storage, hub))
			r.Get("/bookings/export", exportBookings.New(log, storage))
		})
	})

	// Unknown routes land on home.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     router,
		ReadTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout: cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(shutdownCtx); err != nil {
		log.Error("failed to close store connection", sl.Err(err))
	}

	log.Info("store connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
