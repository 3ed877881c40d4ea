package request

type CreateBookingRequest struct {
	UserID             string   `json:"userId" validate:"required,uuid"`
	ServiceID          string   `json:"serviceId" validate:"required,uuid"`
	BookingDate        string   `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	BookingTime        string   `json:"bookingTime" validate:"required"`
	Notes              *string  `json:"notes,omitempty"`
	PickupAddress      *string  `json:"pickupAddress,omitempty" validate:"omitempty,max=500"`
	DestinationAddress *string  `json:"destinationAddress,omitempty" validate:"omitempty,max=500"`
	TotalPrice         *float64 `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
}

// UpdateBookingRequest is a merge patch: nil fields leave the stored value untouched.
type UpdateBookingRequest struct {
	ServiceID          *string  `json:"serviceId,omitempty" validate:"omitempty,uuid"`
	CaregiverID        *string  `json:"caregiverId,omitempty" validate:"omitempty,uuid"`
	BookingDate        *string  `json:"bookingDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BookingTime        *string  `json:"bookingTime,omitempty"`
	Status             *string  `json:"status,omitempty" validate:"omitempty,max=50"`
	CaregiverStatus    *string  `json:"caregiverStatus,omitempty" validate:"omitempty,max=50"`
	PaymentStatus      *string  `json:"paymentStatus,omitempty" validate:"omitempty,max=50"`
	Notes              *string  `json:"notes,omitempty"`
	PickupAddress      *string  `json:"pickupAddress,omitempty" validate:"omitempty,max=500"`
	DestinationAddress *string  `json:"destinationAddress,omitempty" validate:"omitempty,max=500"`
	TotalPrice         *float64 `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
}
