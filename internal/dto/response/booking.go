package response

import (
	"time"

	"homecare-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingID          string                 `json:"bookingId"`
	UserID             string                 `json:"userId"`
	UserName           *string                `json:"userName,omitempty"`
	ServiceID          string                 `json:"serviceId"`
	ServiceName        *string                `json:"serviceName,omitempty"`
	CaregiverID        *string                `json:"caregiverId"`
	BookingDate        string                 `json:"bookingDate"`
	BookingTime        string                 `json:"bookingTime"`
	Status             entity.BookingStatus   `json:"status"`
	CaregiverStatus    entity.CaregiverStatus `json:"caregiverStatus"`
	PaymentStatus      entity.PaymentStatus   `json:"paymentStatus"`
	Notes              *string                `json:"notes"`
	PickupAddress      *string                `json:"pickupAddress"`
	DestinationAddress *string                `json:"destinationAddress"`
	TotalPrice         *float64               `json:"totalPrice"`
	ClockInTime        *time.Time             `json:"clockInTime"`
	ClockOutTime       *time.Time             `json:"clockOutTime"`
	ClockInLocation    *string                `json:"clockInLocation"`
	ClockOutLocation   *string                `json:"clockOutLocation"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	var caregiverID *string
	if booking.CaregiverID != nil {
		id := booking.CaregiverID.String()
		caregiverID = &id
	}

	return BookingResponse{
		BookingID:          booking.ID.String(),
		UserID:             booking.UserID.String(),
		UserName:           booking.UserName,
		ServiceID:          booking.ServiceID.String(),
		ServiceName:        booking.ServiceName,
		CaregiverID:        caregiverID,
		BookingDate:        booking.BookingDate.Format("2006-01-02"),
		BookingTime:        booking.BookingTime,
		Status:             booking.Status,
		CaregiverStatus:    booking.CaregiverStatus,
		PaymentStatus:      booking.PaymentStatus,
		Notes:              booking.Notes,
		PickupAddress:      booking.PickupAddress,
		DestinationAddress: booking.DestinationAddress,
		TotalPrice:         booking.TotalPrice,
		ClockInTime:        booking.ClockInTime,
		ClockOutTime:       booking.ClockOutTime,
		ClockInLocation:    booking.ClockInLocation,
		ClockOutLocation:   booking.ClockOutLocation,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
