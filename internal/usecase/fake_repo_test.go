package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"
	"homecare-booking/pkg/mq"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memBookingRepo is an in-memory BookingRepository. WithTx snapshots the
// table and restores it when fn fails.
type memBookingRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]entity.Booking

	// vanishOnLock deletes the row right after FindByIDForUpdate returns it,
	// simulating a delete that lands between read and write.
	vanishOnLock bool
	failWith     error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{rows: make(map[uuid.UUID]entity.Booking)}
}

func (r *memBookingRepo) put(b entity.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[b.ID] = b
}

func (r *memBookingRepo) get(id uuid.UUID) (entity.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	return b, ok
}

func (r *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if r.failWith != nil {
		return r.failWith
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	r.put(*booking)
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	b, ok := r.get(id)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, err := r.FindByID(ctx, id)
	if err == nil && b != nil && r.vanishOnLock {
		r.mu.Lock()
		delete(r.rows, id)
		r.mu.Unlock()
	}
	return b, err
}

func (r *memBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[booking.ID]; !ok {
		return fmt.Errorf("update booking %s: %w", booking.ID, repository.ErrNotFound)
	}
	r.rows[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memBookingRepo) filter(keep func(b *entity.Booking) bool, less func(a, b *entity.Booking) bool) ([]*entity.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Booking, 0)
	for _, row := range r.rows {
		b := row
		if keep(&b) {
			out = append(out, &b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func dateTimeDesc(a, b *entity.Booking) bool {
	if !a.BookingDate.Equal(b.BookingDate) {
		return a.BookingDate.After(b.BookingDate)
	}
	return a.BookingTime > b.BookingTime
}

func dateDesc(a, b *entity.Booking) bool {
	return a.BookingDate.After(b.BookingDate)
}

func dateTimeAsc(a, b *entity.Booking) bool {
	if !a.BookingDate.Equal(b.BookingDate) {
		return a.BookingDate.Before(b.BookingDate)
	}
	return a.BookingTime < b.BookingTime
}

func (r *memBookingRepo) FindAll(context.Context) ([]*entity.Booking, error) {
	return r.filter(func(*entity.Booking) bool { return true }, dateTimeDesc)
}

func (r *memBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.UserID == userID }, dateTimeDesc)
}

func (r *memBookingRepo) FindByCaregiverID(_ context.Context, caregiverID uuid.UUID) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool {
		return b.CaregiverID != nil && *b.CaregiverID == caregiverID
	}, dateTimeDesc)
}

func (r *memBookingRepo) FindByStatus(_ context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.Status == status }, dateDesc)
}

func (r *memBookingRepo) FindByPaymentStatus(_ context.Context, status entity.PaymentStatus) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.PaymentStatus == status }, dateDesc)
}

func (r *memBookingRepo) FindByCaregiverStatus(_ context.Context, status entity.CaregiverStatus) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.CaregiverStatus == status }, dateDesc)
}

func (r *memBookingRepo) FindUnassigned(context.Context) ([]*entity.Booking, error) {
	return r.filter(unassigned, dateTimeAsc)
}

// unassigned mirrors the store's unassigned-pool predicate.
func unassigned(b *entity.Booking) bool {
	return b.CaregiverID == nil &&
		(b.Status == entity.BookingStatusPending || b.Status == entity.BookingStatusConfirmed)
}

func (r *memBookingRepo) WithTx(_ context.Context, fn func(tx repository.BookingRepository) error) error {
	r.mu.Lock()
	snapshot := make(map[uuid.UUID]entity.Booking, len(r.rows))
	for id, b := range r.rows {
		snapshot[id] = b
	}
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.rows = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

type memCaregiverRepo struct {
	caregivers map[uuid.UUID]*entity.Caregiver
	lookups    int
}

func (r *memCaregiverRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Caregiver, error) {
	r.lookups++
	return r.caregivers[id], nil
}

func (r *memCaregiverRepo) FindAvailable(context.Context) ([]*entity.Caregiver, error) {
	out := make([]*entity.Caregiver, 0)
	for _, c := range r.caregivers {
		if c.IsAvailable {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, v)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var _ mq.Publisher = (*recordingPublisher)(nil)

// fixture wires every service against in-memory stores and a controllable clock.
type fixture struct {
	bookings   *memBookingRepo
	caregivers *memCaregiverRepo
	publisher  *recordingPublisher
	now        time.Time

	booking    *bookingService
	assignment *assignmentService
	analytics  AnalyticsService
}

func newFixture() *fixture {
	f := &fixture{
		bookings:   newMemBookingRepo(),
		caregivers: &memCaregiverRepo{caregivers: make(map[uuid.UUID]*entity.Caregiver)},
		publisher:  &recordingPublisher{},
		now:        time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
	repo := &repository.Repository{Booking: f.bookings, Caregiver: f.caregivers}
	log := zap.NewNop()

	f.booking = NewBookingService(repo, f.publisher, log).(*bookingService)
	f.booking.now = f.clock
	f.assignment = NewAssignmentService(repo, f.publisher, log).(*assignmentService)
	f.assignment.now = f.clock
	f.analytics = NewAnalyticsService(repo, log)
	return f
}

func (f *fixture) clock() time.Time { return f.now }

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

// seed stores a booking directly, bypassing the lifecycle manager.
func (f *fixture) seed(mutate func(b *entity.Booking)) entity.Booking {
	b := entity.Booking{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ServiceID:   uuid.New(),
		BookingDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00:00",
	}
	b.ApplyDefaults()
	b.Stamp(f.now)
	if mutate != nil {
		mutate(&b)
	}
	f.bookings.put(b)
	return b
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
