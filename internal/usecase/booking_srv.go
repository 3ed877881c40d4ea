package usecase

import (
	"context"
	"fmt"
	"time"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/dto/event"
	"homecare-booking/internal/dto/request"
	"homecare-booking/internal/dto/response"
	"homecare-booking/pkg/mq"
	"homecare-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService owns every mutation of a booking's status triple and
// time-tracking fields, plus the booking read paths.
//
// Status edges are not enforced: SetStatus, ClockIn and ClockOut write their
// target state regardless of the current one.
type BookingService interface {
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingsByCaregiver(ctx context.Context, caregiverID string) ([]response.BookingResponse, error)
	GetBookingsByStatus(ctx context.Context, status string) ([]response.BookingResponse, error)
	GetBookingsByPaymentStatus(ctx context.Context, paymentStatus string) ([]response.BookingResponse, error)
	GetBookingsByCaregiverStatus(ctx context.Context, caregiverStatus string) ([]response.BookingResponse, error)

	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*response.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, bookingID, paymentStatus string) (*response.BookingResponse, error)
	UpdateCaregiverStatus(ctx context.Context, bookingID, caregiverStatus string) (*response.BookingResponse, error)
	ClockIn(ctx context.Context, bookingID, location string) (*response.BookingResponse, error)
	ClockOut(ctx context.Context, bookingID, location string) (*response.BookingResponse, error)
	// DeleteBooking reports whether a booking existed; a missing id is not an error.
	DeleteBooking(ctx context.Context, bookingID string) (bool, error)
}

type bookingService struct {
	mutator
}

func NewBookingService(repo *repository.Repository, publisher mq.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		mutator: mutator{
			repo:      repo,
			publisher: publisher,
			log:       log.With(zap.String("service", "booking")),
			now:       clock,
		},
	}
}

// ==================== QUERIES ====================

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	s.log.Info("Bookings retrieved", zap.Int("count", len(bookings)))
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, bookingNotFound(bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking by ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	if booking == nil {
		return nil, bookingNotFound(bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingsByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fieldError("userId", "Must be a valid UUID")
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(bookings)),
	)
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByCaregiver(ctx context.Context, caregiverID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(caregiverID)
	if err != nil {
		return nil, fieldError("caregiverId", "Must be a valid UUID")
	}

	bookings, err := s.repo.Booking.FindByCaregiverID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get caregiver bookings",
			zap.Error(err),
			zap.String("caregiver_id", caregiverID),
		)
		return nil, fmt.Errorf("get caregiver bookings: %w", err)
	}

	s.log.Info("Caregiver bookings retrieved",
		zap.String("caregiver_id", caregiverID),
		zap.Int("count", len(bookings)),
	)
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByStatus(ctx context.Context, status string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByStatus(ctx, entity.BookingStatus(status))
	if err != nil {
		s.log.Error("Failed to get bookings by status", zap.Error(err), zap.String("status", status))
		return nil, fmt.Errorf("get bookings by status %s: %w", status, err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByPaymentStatus(ctx context.Context, paymentStatus string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByPaymentStatus(ctx, entity.PaymentStatus(paymentStatus))
	if err != nil {
		s.log.Error("Failed to get bookings by payment status", zap.Error(err), zap.String("payment_status", paymentStatus))
		return nil, fmt.Errorf("get bookings by payment status %s: %w", paymentStatus, err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByCaregiverStatus(ctx context.Context, caregiverStatus string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByCaregiverStatus(ctx, entity.CaregiverStatus(caregiverStatus))
	if err != nil {
		s.log.Error("Failed to get bookings by caregiver status", zap.Error(err), zap.String("caregiver_status", caregiverStatus))
		return nil, fmt.Errorf("get bookings by caregiver status %s: %w", caregiverStatus, err)
	}
	return response.BookingsToResponse(bookings), nil
}

// ==================== LIFECYCLE ====================

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	ctx, span := tracer.Start(ctx, "booking.CreateBooking")
	defer span.End()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	bookingTime, err := utils.ParseClock(req.BookingTime)
	if err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, fieldError("bookingTime", "Must match layout 15:04 or 15:04:05")
	}

	// Format already checked by the validator.
	userID := uuid.MustParse(req.UserID)
	serviceID := uuid.MustParse(req.ServiceID)
	bookingDate, _ := utils.ParseDate(req.BookingDate)

	booking := &entity.Booking{
		UserID:             userID,
		ServiceID:          serviceID,
		BookingDate:        bookingDate,
		BookingTime:        bookingTime,
		Notes:              req.Notes,
		PickupAddress:      req.PickupAddress,
		DestinationAddress: req.DestinationAddress,
		TotalPrice:         req.TotalPrice,
	}
	booking.ApplyDefaults()
	booking.Stamp(s.now())

	err = s.repo.Booking.WithTx(ctx, func(tx repository.BookingRepository) error {
		return tx.Create(ctx, booking)
	})
	if err != nil {
		span.RecordError(err)
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("service_id", req.ServiceID),
		zap.String("booking_date", req.BookingDate),
		zap.String("booking_time", bookingTime),
	)
	s.publish(ctx, event.FromBooking(event.BookingCreated, booking, booking.CreatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// bookingPatch is an UpdateBookingRequest with its ids, date and time already parsed.
type bookingPatch struct {
	req         *request.UpdateBookingRequest
	serviceID   *uuid.UUID
	caregiverID *uuid.UUID
	bookingDate *time.Time
	bookingTime *string
}

func parseBookingPatch(req *request.UpdateBookingRequest) (*bookingPatch, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	patch := &bookingPatch{req: req}
	if req.ServiceID != nil {
		id := uuid.MustParse(*req.ServiceID)
		patch.serviceID = &id
	}
	if req.CaregiverID != nil {
		id := uuid.MustParse(*req.CaregiverID)
		patch.caregiverID = &id
	}
	if req.BookingDate != nil {
		date, _ := utils.ParseDate(*req.BookingDate)
		patch.bookingDate = &date
	}
	if req.BookingTime != nil {
		bookingTime, err := utils.ParseClock(*req.BookingTime)
		if err != nil {
			return nil, fieldError("bookingTime", "Must match layout 15:04 or 15:04:05")
		}
		patch.bookingTime = &bookingTime
	}
	return patch, nil
}

// apply overwrites only the fields present in the patch.
func (p *bookingPatch) apply(b *entity.Booking) error {
	if p.serviceID != nil && *p.serviceID != b.ServiceID && b.Status.IsClosed() {
		return fieldError("serviceId", fmt.Sprintf("Cannot change the service of a %s booking", b.Status))
	}

	if p.serviceID != nil && *p.serviceID != b.ServiceID {
		b.ServiceID = *p.serviceID
		// The joined name belongs to the old service.
		b.ServiceName = nil
	}
	if p.caregiverID != nil {
		b.CaregiverID = p.caregiverID
	}
	if p.bookingDate != nil {
		b.BookingDate = *p.bookingDate
	}
	if p.bookingTime != nil {
		b.BookingTime = *p.bookingTime
	}
	if p.req.Status != nil {
		b.Status = entity.BookingStatus(*p.req.Status)
	}
	if p.req.CaregiverStatus != nil {
		b.CaregiverStatus = entity.CaregiverStatus(*p.req.CaregiverStatus)
	}
	if p.req.PaymentStatus != nil {
		b.PaymentStatus = entity.PaymentStatus(*p.req.PaymentStatus)
	}
	if p.req.Notes != nil {
		b.Notes = p.req.Notes
	}
	if p.req.PickupAddress != nil {
		b.PickupAddress = p.req.PickupAddress
	}
	if p.req.DestinationAddress != nil {
		b.DestinationAddress = p.req.DestinationAddress
	}
	if p.req.TotalPrice != nil {
		b.TotalPrice = p.req.TotalPrice
	}
	return nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	patch, err := parseBookingPatch(req)
	if err != nil {
		s.log.Warn("Update booking validation failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	booking, err := s.mutate(ctx, "update booking", bookingID, func(b *entity.Booking, _ time.Time) error {
		return patch.apply(b)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))
	s.publish(ctx, event.FromBooking(event.BookingUpdated, booking, booking.UpdatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID, status string) (*response.BookingResponse, error) {
	if status == "" {
		return nil, fieldError("status", "This field is required")
	}

	booking, err := s.mutate(ctx, "update booking status", bookingID, func(b *entity.Booking, _ time.Time) error {
		b.Status = entity.BookingStatus(status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", status),
	)
	s.publish(ctx, event.FromBooking(event.BookingStatusChanged, booking, booking.UpdatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, bookingID, paymentStatus string) (*response.BookingResponse, error) {
	if paymentStatus == "" {
		return nil, fieldError("paymentStatus", "This field is required")
	}

	booking, err := s.mutate(ctx, "update payment status", bookingID, func(b *entity.Booking, _ time.Time) error {
		b.PaymentStatus = entity.PaymentStatus(paymentStatus)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", paymentStatus),
	)
	s.publish(ctx, event.FromBooking(event.BookingPaymentStatusChanged, booking, booking.UpdatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateCaregiverStatus(ctx context.Context, bookingID, caregiverStatus string) (*response.BookingResponse, error) {
	if caregiverStatus == "" {
		return nil, fieldError("caregiverStatus", "This field is required")
	}

	booking, err := s.mutate(ctx, "update caregiver status", bookingID, func(b *entity.Booking, _ time.Time) error {
		b.CaregiverStatus = entity.CaregiverStatus(caregiverStatus)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking caregiver status updated",
		zap.String("booking_id", bookingID),
		zap.String("caregiver_status", caregiverStatus),
	)
	s.publish(ctx, event.FromBooking(event.BookingCaregiverStatusChanged, booking, booking.UpdatedAt))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ClockIn(ctx context.Context, bookingID, location string) (*response.BookingResponse, error) {
	booking, err := s.mutate(ctx, "clock in", bookingID, func(b *entity.Booking, now time.Time) error {
		b.ClockIn(now, location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Caregiver clocked in",
		zap.String("booking_id", bookingID),
		zap.Stringp("location", booking.ClockInLocation),
		zap.Timep("clock_in_time", booking.ClockInTime),
	)
	evt := event.FromBooking(event.BookingClockedIn, booking, *booking.ClockInTime)
	evt.Location = booking.ClockInLocation
	s.publish(ctx, evt)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ClockOut(ctx context.Context, bookingID, location string) (*response.BookingResponse, error) {
	booking, err := s.mutate(ctx, "clock out", bookingID, func(b *entity.Booking, now time.Time) error {
		b.ClockOut(now, location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Caregiver clocked out",
		zap.String("booking_id", bookingID),
		zap.Stringp("location", booking.ClockOutLocation),
		zap.Timep("clock_out_time", booking.ClockOutTime),
	)
	evt := event.FromBooking(event.BookingClockedOut, booking, *booking.ClockOutTime)
	evt.Location = booking.ClockOutLocation
	s.publish(ctx, evt)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "booking.DeleteBooking")
	defer span.End()

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return false, nil
	}

	var deleted bool
	err = s.repo.Booking.WithTx(ctx, func(tx repository.BookingRepository) error {
		deleted, err = tx.Delete(ctx, id)
		return err
	})
	if err != nil {
		span.RecordError(err)
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return false, fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	if !deleted {
		s.log.Warn("Delete booking - nothing to delete", zap.String("booking_id", bookingID))
		return false, nil
	}

	s.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	s.publish(ctx, event.BookingEvent{
		Type:       event.BookingDeleted,
		BookingID:  id.String(),
		OccurredAt: s.now(),
	})
	return true, nil
}
