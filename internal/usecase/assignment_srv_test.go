package usecase

import (
	"context"
	"testing"
	"time"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/dto/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCaregiver(t *testing.T) {
	f := newFixture()
	seeded := f.seed(nil)
	caregiverID := uuid.New()
	f.caregivers.caregivers[caregiverID] = &entity.Caregiver{ID: caregiverID, Name: "Ana", IsAvailable: true}

	resp, err := f.assignment.AssignCaregiver(context.Background(), seeded.ID.String(), caregiverID.String())
	require.NoError(t, err)

	assert.Equal(t, caregiverID.String(), *resp.CaregiverID)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, entity.CaregiverStatusAccepted, resp.CaregiverStatus)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)

	stored, _ := f.bookings.get(seeded.ID)
	require.NotNil(t, stored.CaregiverID)
	assert.Equal(t, caregiverID, *stored.CaregiverID)
	assert.Equal(t, []string{event.BookingCaregiverAssigned}, f.publisher.keys)
}

func TestAssignCaregiver_UnknownCaregiverStillAssigned(t *testing.T) {
	f := newFixture()
	seeded := f.seed(nil)
	unavailable := uuid.New()
	f.caregivers.caregivers[unavailable] = &entity.Caregiver{ID: unavailable, Name: "Ben", IsAvailable: false}

	for _, caregiverID := range []uuid.UUID{uuid.New(), unavailable} {
		resp, err := f.assignment.AssignCaregiver(context.Background(), seeded.ID.String(), caregiverID.String())
		require.NoError(t, err)
		assert.Equal(t, caregiverID.String(), *resp.CaregiverID)
	}
	assert.Equal(t, 2, f.caregivers.lookups)
}

func TestAssignCaregiver_NotFoundLeavesStoreUnchanged(t *testing.T) {
	f := newFixture()
	seeded := f.seed(nil)

	_, err := f.assignment.AssignCaregiver(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	stored, _ := f.bookings.get(seeded.ID)
	assert.Equal(t, seeded, stored)
	assert.Len(t, f.bookings.rows, 1)
	assert.Empty(t, f.publisher.keys)
}

func TestAssignCaregiver_BadCaregiverID(t *testing.T) {
	f := newFixture()
	seeded := f.seed(nil)

	for _, caregiverID := range []string{"", "N"} {
		_, err := f.assignment.AssignCaregiver(context.Background(), seeded.ID.String(), caregiverID)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "caregiverId")
	}
	assert.Zero(t, f.caregivers.lookups)
}

func TestGetUnassignedBookings(t *testing.T) {
	f := newFixture()
	day := func(d int) time.Time { return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC) }
	assigned := uuid.New()

	late := f.seed(func(b *entity.Booking) { b.BookingDate = day(20) })
	earlyAfternoon := f.seed(func(b *entity.Booking) {
		b.BookingDate = day(3)
		b.BookingTime = "15:00:00"
		b.Status = entity.BookingStatusConfirmed
	})
	earlyMorning := f.seed(func(b *entity.Booking) { b.BookingDate = day(3); b.BookingTime = "09:00:00" })
	f.seed(func(b *entity.Booking) { b.BookingDate = day(1); b.CaregiverID = &assigned })
	f.seed(func(b *entity.Booking) { b.BookingDate = day(1); b.Status = entity.BookingStatusCancelled })
	f.seed(func(b *entity.Booking) { b.BookingDate = day(1); b.Status = entity.BookingStatusInProgress })

	list, err := f.assignment.GetUnassignedBookings(context.Background())
	require.NoError(t, err)

	ids := make([]string, len(list))
	for i, b := range list {
		ids[i] = b.BookingID
		assert.Nil(t, b.CaregiverID)
		assert.Contains(t, []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed}, b.Status)
	}
	assert.Equal(t, []string{
		earlyMorning.ID.String(),
		earlyAfternoon.ID.String(),
		late.ID.String(),
	}, ids)
}
