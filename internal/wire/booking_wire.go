package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create new booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List bookings, optionally filtered by phone
		r.Get("/", bookingHandler.ListBookings)

		// DELETE /api/bookings/{reference} - Cancel a booking
		r.Delete("/{reference}", bookingHandler.CancelBooking)
	})
}
