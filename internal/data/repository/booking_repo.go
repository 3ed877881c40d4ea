package repository

import (
	"context"
	"errors"
	"fmt"

	"homecare-booking/internal/data/entity"
	"homecare-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Listings. All, user and caregiver sort newest first by (date, time);
	// the status filters sort newest first by date only.
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Booking, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
	FindByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Booking, error)
	FindByCaregiverStatus(ctx context.Context, status entity.CaregiverStatus) ([]*entity.Booking, error)
	// FindUnassigned sorts oldest first so the soonest work surfaces at the top.
	FindUnassigned(ctx context.Context) ([]*entity.Booking, error)

	// WithTx runs fn against a repository bound to one transaction.
	// fn returning an error rolls the transaction back.
	WithTx(ctx context.Context, fn func(tx BookingRepository) error) error
}

type bookingRepository struct {
	db  database.PgxIface
	q   database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		q:   db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingSelect = `
	SELECT b.booking_id, b.user_id, b.service_id, b.caregiver_id,
	       b.booking_date, to_char(b.booking_time, 'HH24:MI:SS'),
	       COALESCE(b.status, 'Pending'), COALESCE(b.caregiver_status, 'Pending'),
	       COALESCE(b.payment_status, 'Unpaid'),
	       b.notes, b.pickup_address, b.destination_address, b.total_price,
	       b.clock_in_time, b.clock_out_time, b.clock_in_location, b.clock_out_location,
	       b.created_at, b.updated_at,
	       u.name, s.service_name
	FROM bookings b
	LEFT JOIN app_users u ON u.user_id = b.user_id
	LEFT JOIN services s ON s.service_id = b.service_id
`

const (
	orderByDateTimeDesc = ` ORDER BY b.booking_date DESC, b.booking_time DESC`
	orderByDateDesc     = ` ORDER BY b.booking_date DESC`
	orderByDateTimeAsc  = ` ORDER BY b.booking_date ASC, b.booking_time ASC`
)

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking                                entity.Booking
		status, caregiverStatus, paymentStatus string
	)
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceID,
		&booking.CaregiverID,
		&booking.BookingDate,
		&booking.BookingTime,
		&status,
		&caregiverStatus,
		&paymentStatus,
		&booking.Notes,
		&booking.PickupAddress,
		&booking.DestinationAddress,
		&booking.TotalPrice,
		&booking.ClockInTime,
		&booking.ClockOutTime,
		&booking.ClockInLocation,
		&booking.ClockOutLocation,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.UserName,
		&booking.ServiceName,
	)
	if err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatus(status)
	booking.CaregiverStatus = entity.CaregiverStatus(caregiverStatus)
	booking.PaymentStatus = entity.PaymentStatus(paymentStatus)
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query := `
		INSERT INTO bookings (
			booking_id, user_id, service_id, caregiver_id, booking_date, booking_time,
			status, caregiver_status, payment_status,
			notes, pickup_address, destination_address, total_price,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.q.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ServiceID,
		booking.CaregiverID,
		booking.BookingDate,
		booking.BookingTime,
		string(booking.Status),
		string(booking.CaregiverStatus),
		string(booking.PaymentStatus),
		booking.Notes,
		booking.PickupAddress,
		booking.DestinationAddress,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findOne(ctx, bookingSelect+` WHERE b.booking_id = $1`, id)
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findOne(ctx, bookingSelect+` WHERE b.booking_id = $1 FOR UPDATE OF b`, id)
}

func (r *bookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET service_id = $2, caregiver_id = $3, booking_date = $4, booking_time = $5::time,
		    status = $6, caregiver_status = $7, payment_status = $8,
		    notes = $9, pickup_address = $10, destination_address = $11, total_price = $12,
		    clock_in_time = $13, clock_out_time = $14,
		    clock_in_location = $15, clock_out_location = $16,
		    updated_at = $17
		WHERE booking_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		booking.ID,
		booking.ServiceID,
		booking.CaregiverID,
		booking.BookingDate,
		booking.BookingTime,
		string(booking.Status),
		string(booking.CaregiverStatus),
		string(booking.PaymentStatus),
		booking.Notes,
		booking.PickupAddress,
		booking.DestinationAddress,
		booking.TotalPrice,
		booking.ClockInTime,
		booking.ClockOutTime,
		booking.ClockInLocation,
		booking.ClockOutLocation,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find all bookings", bookingSelect+orderByDateTimeDesc)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find bookings by user ID",
		bookingSelect+` WHERE b.user_id = $1`+orderByDateTimeDesc, userID)
}

func (r *bookingRepository) FindByCaregiverID(ctx context.Context, caregiverID uuid.UUID) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find bookings by caregiver ID",
		bookingSelect+` WHERE b.caregiver_id = $1`+orderByDateTimeDesc, caregiverID)
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find bookings by status",
		bookingSelect+` WHERE b.status = $1`+orderByDateDesc, string(status))
}

func (r *bookingRepository) FindByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find bookings by payment status",
		bookingSelect+` WHERE b.payment_status = $1`+orderByDateDesc, string(status))
}

func (r *bookingRepository) FindByCaregiverStatus(ctx context.Context, status entity.CaregiverStatus) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find bookings by caregiver status",
		bookingSelect+` WHERE b.caregiver_status = $1`+orderByDateDesc, string(status))
}

func (r *bookingRepository) FindUnassigned(ctx context.Context) ([]*entity.Booking, error) {
	return r.findMany(ctx, "find unassigned bookings",
		bookingSelect+` WHERE b.caregiver_id IS NULL AND COALESCE(b.status, 'Pending') IN ('Pending', 'Confirmed')`+orderByDateTimeAsc)
}

func (r *bookingRepository) findMany(ctx context.Context, operation, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return bookings, nil
}

func (r *bookingRepository) WithTx(ctx context.Context, fn func(tx BookingRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := &bookingRepository{db: r.db, q: tx, log: r.log}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
