package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventline/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(events *controllers.EventController, bookings *controllers.BookingController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("POST /events", events.CreateEvent)
	mux.HandleFunc("GET /events/{slug}", events.GetEventBySlug)
	mux.HandleFunc("PATCH /events/{eventID}", events.UpdateEvent)

	// Bookings
	mux.HandleFunc("POST /bookings", bookings.CreateBooking)
	mux.HandleFunc("GET /events/{eventID}/bookings", bookings.ListBookings)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
