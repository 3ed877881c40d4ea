package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the overall booking state. The set is open: any value the
// caller stores is kept verbatim.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "In-Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// IsCompleted compares case-insensitively, matching how revenue is counted.
func (s BookingStatus) IsCompleted() bool {
	return strings.EqualFold(string(s), string(BookingStatusCompleted))
}

// IsClosed reports Completed or Cancelled.
func (s BookingStatus) IsClosed() bool {
	return s.IsCompleted() || strings.EqualFold(string(s), string(BookingStatusCancelled))
}

type CaregiverStatus string

const (
	CaregiverStatusPending  CaregiverStatus = "Pending"
	CaregiverStatusAccepted CaregiverStatus = "Accepted"
	CaregiverStatusDeclined CaregiverStatus = "Declined"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// UnknownLocation is recorded when a clock-in/out arrives without a location.
const UnknownLocation = "Unknown"

type Booking struct {
	ID          uuid.UUID  `db:"booking_id"`
	UserID      uuid.UUID  `db:"user_id"`
	ServiceID   uuid.UUID  `db:"service_id"`
	CaregiverID *uuid.UUID `db:"caregiver_id"`

	// BookingDate is a calendar date (UTC midnight); BookingTime is "HH:MM:SS".
	BookingDate time.Time `db:"booking_date"`
	BookingTime string    `db:"booking_time"`

	Status          BookingStatus   `db:"status"`
	CaregiverStatus CaregiverStatus `db:"caregiver_status"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`

	Notes              *string  `db:"notes"`
	PickupAddress      *string  `db:"pickup_address"`
	DestinationAddress *string  `db:"destination_address"`
	TotalPrice         *float64 `db:"total_price"`

	ClockInTime      *time.Time `db:"clock_in_time"`
	ClockOutTime     *time.Time `db:"clock_out_time"`
	ClockInLocation  *string    `db:"clock_in_location"`
	ClockOutLocation *string    `db:"clock_out_location"`

	Audit

	// Read-only, filled by the store's joins.
	UserName    *string `db:"user_name"`
	ServiceName *string `db:"service_name"`
}

// ApplyDefaults fills the initial status triple.
func (b *Booking) ApplyDefaults() {
	b.Status = BookingStatusPending
	b.CaregiverStatus = CaregiverStatusPending
	b.PaymentStatus = PaymentStatusUnpaid
}

// ClockIn records the start of on-site work and moves the booking to In-Progress.
func (b *Booking) ClockIn(now time.Time, location string) {
	if location == "" {
		location = UnknownLocation
	}
	b.ClockInTime = &now
	b.ClockInLocation = &location
	b.Status = BookingStatusInProgress
}

// ClockOut records the end of on-site work and completes the booking.
// The recorded time never precedes an existing clock-in.
func (b *Booking) ClockOut(now time.Time, location string) {
	if location == "" {
		location = UnknownLocation
	}
	if b.ClockInTime != nil && now.Before(*b.ClockInTime) {
		now = *b.ClockInTime
	}
	b.ClockOutTime = &now
	b.ClockOutLocation = &location
	b.Status = BookingStatusCompleted
}

// AssignCaregiver binds the caregiver and confirms the booking.
func (b *Booking) AssignCaregiver(caregiverID uuid.UUID) {
	b.CaregiverID = &caregiverID
	b.Status = BookingStatusConfirmed
	b.CaregiverStatus = CaregiverStatusAccepted
}
