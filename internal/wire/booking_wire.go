package wire

import (
	"homecare-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)
		r.Post("/", bookingHandler.CreateBooking)

		// Static segments are matched before /{id}
		r.Get("/unassigned", bookingHandler.GetUnassignedBookings)
		r.Get("/user/{userId}", bookingHandler.GetBookingsByUser)
		r.Get("/caregiver/{caregiverId}", bookingHandler.GetBookingsByCaregiver)
		r.Get("/status/{status}", bookingHandler.GetBookingsByStatus)
		r.Get("/payment-status/{paymentStatus}", bookingHandler.GetBookingsByPaymentStatus)
		r.Get("/caregiver-status/{caregiverStatus}", bookingHandler.GetBookingsByCaregiverStatus)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bookingHandler.GetBookingByID)
			r.Put("/", bookingHandler.UpdateBooking)
			r.Delete("/", bookingHandler.DeleteBooking)

			// PATCH and POST are both accepted for the single-field transitions
			for _, method := range []string{"PATCH", "POST"} {
				r.MethodFunc(method, "/status", bookingHandler.UpdateStatus)
				r.MethodFunc(method, "/payment-status", bookingHandler.UpdatePaymentStatus)
				r.MethodFunc(method, "/assign-caregiver", bookingHandler.AssignCaregiver)
				r.MethodFunc(method, "/clock-in", bookingHandler.ClockIn)
				r.MethodFunc(method, "/clock-out", bookingHandler.ClockOut)
			}

			r.Patch("/caregiver-status", bookingHandler.UpdateCaregiverStatus)
		})
	})
}
