package wire

import (
	"sportello-booking/internal/adaptor"
	"sportello-booking/pkg/middleware"
	"sportello-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	// GET /api/bookings/{ref} - Confirmation page lookup (public)
	r.Get("/api/bookings/{ref}", bookingHandler.GetByRef)

	// Admin overview
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AdminToken(config.App.AdminToken, log))

		// GET /api/admin/bookings - Recent bookings
		r.Get("/", bookingHandler.ListRecent)
	})
}
