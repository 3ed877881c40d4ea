package usecase

import (
	"context"
	"fmt"
	"time"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/dto/event"
	"homecare-booking/internal/dto/response"
	"homecare-booking/pkg/mq"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssignmentService binds caregivers to bookings and exposes the unassigned pool.
type AssignmentService interface {
	AssignCaregiver(ctx context.Context, bookingID, caregiverID string) (*response.BookingResponse, error)
	GetUnassignedBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type assignmentService struct {
	mutator
}

func NewAssignmentService(repo *repository.Repository, publisher mq.Publisher, log *zap.Logger) AssignmentService {
	return &assignmentService{
		mutator: mutator{
			repo:      repo,
			publisher: publisher,
			log:       log.With(zap.String("service", "assignment")),
			now:       clock,
		},
	}
}

func (s *assignmentService) AssignCaregiver(ctx context.Context, bookingID, caregiverID string) (*response.BookingResponse, error) {
	if caregiverID == "" {
		return nil, fieldError("caregiverId", "This field is required")
	}
	cgID, err := uuid.Parse(caregiverID)
	if err != nil {
		return nil, fieldError("caregiverId", "Must be a valid UUID")
	}

	s.checkDirectory(ctx, cgID)

	booking, err := s.mutate(ctx, "assign caregiver", bookingID, func(b *entity.Booking, _ time.Time) error {
		b.AssignCaregiver(cgID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Caregiver assigned",
		zap.String("booking_id", bookingID),
		zap.String("caregiver_id", caregiverID),
	)
	s.publish(ctx, event.FromBooking(event.BookingCaregiverAssigned, booking, booking.UpdatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// checkDirectory looks the caregiver up for the log only; assignment proceeds
// whatever the directory says.
func (s *assignmentService) checkDirectory(ctx context.Context, caregiverID uuid.UUID) {
	caregiver, err := s.repo.Caregiver.FindByID(ctx, caregiverID)
	switch {
	case err != nil:
		s.log.Warn("Caregiver directory lookup failed",
			zap.Error(err),
			zap.String("caregiver_id", caregiverID.String()),
		)
	case caregiver == nil:
		s.log.Warn("Assigning caregiver missing from directory",
			zap.String("caregiver_id", caregiverID.String()),
		)
	case !caregiver.IsAvailable:
		s.log.Warn("Assigning unavailable caregiver",
			zap.String("caregiver_id", caregiverID.String()),
			zap.String("caregiver_name", caregiver.Name),
		)
	}
}

func (s *assignmentService) GetUnassignedBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindUnassigned(ctx)
	if err != nil {
		s.log.Error("Failed to get unassigned bookings", zap.Error(err))
		return nil, fmt.Errorf("get unassigned bookings: %w", err)
	}

	s.log.Info("Unassigned bookings retrieved", zap.Int("count", len(bookings)))
	return response.BookingsToResponse(bookings), nil
}
