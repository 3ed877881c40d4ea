package usecase

import (
	"context"
	"errors"
	"time"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/dto/event"
	"homecare-booking/pkg/mq"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("homecare-booking/internal/usecase")

type Service struct {
	Booking    BookingService
	Assignment AssignmentService
	Analytics  AnalyticsService
	Caregiver  CaregiverService
}

func NewService(repo *repository.Repository, publisher mq.Publisher, log *zap.Logger) *Service {
	return &Service{
		Booking:    NewBookingService(repo, publisher, log),
		Assignment: NewAssignmentService(repo, publisher, log),
		Analytics:  NewAnalyticsService(repo, log),
		Caregiver:  NewCaregiverService(repo, log),
	}
}

// clock returns UTC truncated to the store's microsecond precision, so the value
// handed back to callers equals what was persisted.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// mutator carries what every write operation on a booking needs.
type mutator struct {
	repo      *repository.Repository
	publisher mq.Publisher
	log       *zap.Logger
	now       func() time.Time
}

// mutate runs the read-modify-write cycle for one booking inside a single
// transaction, holding a row lock between the read and the write.
func (m *mutator) mutate(ctx context.Context, op, bookingID string, fn func(b *entity.Booking, now time.Time) error) (*entity.Booking, error) {
	ctx, span := tracer.Start(ctx, "booking."+op, trace.WithAttributes(attribute.String("booking.id", bookingID)))
	defer span.End()

	id, err := uuid.Parse(bookingID)
	if err != nil {
		// A malformed id can never name a stored booking.
		return nil, bookingNotFound(bookingID)
	}

	var updated *entity.Booking
	err = m.repo.Booking.WithTx(ctx, func(tx repository.BookingRepository) error {
		booking, err := tx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return bookingNotFound(bookingID)
		}

		now := m.now()
		if err := fn(booking, now); err != nil {
			return err
		}
		booking.Touch(now)

		if err := tx.Update(ctx, booking); err != nil {
			return err
		}
		updated = booking
		return nil
	})
	if err != nil {
		return nil, m.fail(span, op, bookingID, err)
	}

	return updated, nil
}

// fail normalizes store errors into domain errors and logs at the right level.
func (m *mutator) fail(span trace.Span, op, bookingID string, err error) error {
	if isNotFound(err) {
		m.log.Warn(op+" failed - booking not found", zap.String("booking_id", bookingID))
		if !errors.Is(err, ErrBookingNotFound) {
			err = bookingNotFound(bookingID)
		}
		return err
	}
	if isValidation(err) {
		m.log.Warn(op+" validation failed", zap.String("booking_id", bookingID), zap.Error(err))
		return err
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	m.log.Error("Failed to "+op, zap.String("booking_id", bookingID), zap.Error(err))
	return err
}

// publish emits a lifecycle event after commit. Failures are logged only: the
// write has already been committed.
func (m *mutator) publish(ctx context.Context, evt event.BookingEvent) {
	if err := m.publisher.PublishJSON(ctx, evt.Type, evt); err != nil {
		m.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", evt.Type),
			zap.String("booking_id", evt.BookingID),
		)
	}
}
