package repository

import (
	"errors"

	"homecare-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Booking   BookingRepository
	Caregiver CaregiverRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:   NewBookingRepository(db, log),
		Caregiver: NewCaregiverRepository(db, log),
	}
}
