package event

import (
	"time"

	"homecare-booking/internal/data/entity"
)

// Routing keys published on the booking events exchange.
const (
	BookingCreated                = "booking.created"
	BookingUpdated                = "booking.updated"
	BookingStatusChanged          = "booking.status_changed"
	BookingPaymentStatusChanged   = "booking.payment_status_changed"
	BookingCaregiverStatusChanged = "booking.caregiver_status_changed"
	BookingCaregiverAssigned      = "booking.caregiver_assigned"
	BookingClockedIn              = "booking.clocked_in"
	BookingClockedOut             = "booking.clocked_out"
	BookingDeleted                = "booking.deleted"
)

type BookingEvent struct {
	Type            string                 `json:"type"`
	BookingID       string                 `json:"bookingId"`
	UserID          string                 `json:"userId,omitempty"`
	CaregiverID     *string                `json:"caregiverId,omitempty"`
	Status          entity.BookingStatus   `json:"status,omitempty"`
	CaregiverStatus entity.CaregiverStatus `json:"caregiverStatus,omitempty"`
	PaymentStatus   entity.PaymentStatus   `json:"paymentStatus,omitempty"`
	Location        *string                `json:"location,omitempty"`
	OccurredAt      time.Time              `json:"occurredAt"`
}

// FromBooking snapshots the booking's identity and status triple.
func FromBooking(eventType string, booking *entity.Booking, at time.Time) BookingEvent {
	var caregiverID *string
	if booking.CaregiverID != nil {
		id := booking.CaregiverID.String()
		caregiverID = &id
	}

	return BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID.String(),
		UserID:          booking.UserID.String(),
		CaregiverID:     caregiverID,
		Status:          booking.Status,
		CaregiverStatus: booking.CaregiverStatus,
		PaymentStatus:   booking.PaymentStatus,
		OccurredAt:      at,
	}
}
