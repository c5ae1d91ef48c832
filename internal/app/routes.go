package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundHandler)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/healthcheck", app.GetHealth)

	// The countdown stream flushes incrementally, so it stays outside the
	// session middleware, which buffers writes until the session commits.
	r.Get("/shows/booking/countdown", app.BookingCountdown)

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)
		r.Use(app.ensureGuestUserSession)

		r.Get("/movies", app.GetMovies)
		r.Get("/theatres", app.GetTheatres)

		r.Route("/shows", func(r chi.Router) {
			r.Get("/seats", app.GetSeatMap)

			r.Route("/selection", func(r chi.Router) {
				r.Post("/toggle", app.ToggleSeat)
				r.Get("/", app.GetSelection)
				r.Delete("/", app.DeleteSelection)
			})

			r.Post("/booking", app.ConfirmBooking)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", app.CreateBooking)
			r.Get("/", app.GetBookings)
			r.Delete("/", app.ClearBookings)
		})
	})

	return r
}
