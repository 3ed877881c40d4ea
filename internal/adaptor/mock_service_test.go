package adaptor

import (
	"context"

	"homecare-booking/internal/dto/request"
	"homecare-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func bookingResult(args mock.Arguments) (*response.BookingResponse, error) {
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

func bookingsResult(args mock.Arguments) ([]response.BookingResponse, error) {
	list, _ := args.Get(0).([]response.BookingResponse)
	return list, args.Error(1)
}

func (m *mockBookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called())
}

func (m *mockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID))
}

func (m *mockBookingService) GetBookingsByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called(userID))
}

func (m *mockBookingService) GetBookingsByCaregiver(ctx context.Context, caregiverID string) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called(caregiverID))
}

func (m *mockBookingService) GetBookingsByStatus(ctx context.Context, status string) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called(status))
}

func (m *mockBookingService) GetBookingsByPaymentStatus(ctx context.Context, paymentStatus string) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called(paymentStatus))
}

func (m *mockBookingService) GetBookingsByCaregiverStatus(ctx context.Context, caregiverStatus string) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called(caregiverStatus))
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return bookingResult(m.Called(req))
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, req))
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, bookingID, status string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, status))
}

func (m *mockBookingService) UpdatePaymentStatus(ctx context.Context, bookingID, paymentStatus string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, paymentStatus))
}

func (m *mockBookingService) UpdateCaregiverStatus(ctx context.Context, bookingID, caregiverStatus string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, caregiverStatus))
}

func (m *mockBookingService) ClockIn(ctx context.Context, bookingID, location string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, location))
}

func (m *mockBookingService) ClockOut(ctx context.Context, bookingID, location string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, location))
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(bookingID)
	return args.Bool(0), args.Error(1)
}

type mockAssignmentService struct {
	mock.Mock
}

func (m *mockAssignmentService) AssignCaregiver(ctx context.Context, bookingID, caregiverID string) (*response.BookingResponse, error) {
	return bookingResult(m.Called(bookingID, caregiverID))
}

func (m *mockAssignmentService) GetUnassignedBookings(ctx context.Context) ([]response.BookingResponse, error) {
	return bookingsResult(m.Called())
}

type mockAnalyticsService struct {
	mock.Mock
}

func (m *mockAnalyticsService) GetDashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*response.DashboardStatsResponse)
	return stats, args.Error(1)
}

func (m *mockAnalyticsService) GetSalesTrends(ctx context.Context) (response.SalesTrendsResponse, error) {
	args := m.Called()
	trends, _ := args.Get(0).(response.SalesTrendsResponse)
	return trends, args.Error(1)
}
