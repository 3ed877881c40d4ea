package usecase

import (
	"context"
	"fmt"
	"strings"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/dto/response"

	"go.uber.org/zap"
)

// AnalyticsService derives read-only statistics from the full booking table.
// Nothing is cached; every call rescans.
type AnalyticsService interface {
	GetDashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error)
	// GetSalesTrends groups completed revenue by month name. Years are not
	// distinguished, so March 2024 and March 2025 share one bucket.
	GetSalesTrends(ctx context.Context) (response.SalesTrendsResponse, error)
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) GetDashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	ctx, span := tracer.Start(ctx, "analytics.GetDashboardStats")
	defer span.End()

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		s.log.Error("Failed to load bookings for dashboard", zap.Error(err))
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := &response.DashboardStatsResponse{
		TotalBookings:      int64(len(bookings)),
		StatusDistribution: make(map[string]int64),
	}
	// A NULL status already reads back as Pending; an empty string is its own key.
	for _, b := range bookings {
		stats.StatusDistribution[string(b.Status)]++

		if b.Status.IsCompleted() {
			stats.TotalSales += price(b)
		}
	}

	s.log.Debug("Dashboard stats computed",
		zap.Int64("total_bookings", stats.TotalBookings),
		zap.Float64("total_sales", stats.TotalSales),
	)
	return stats, nil
}

func (s *analyticsService) GetSalesTrends(ctx context.Context) (response.SalesTrendsResponse, error) {
	ctx, span := tracer.Start(ctx, "analytics.GetSalesTrends")
	defer span.End()

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		s.log.Error("Failed to load bookings for sales trends", zap.Error(err))
		return nil, fmt.Errorf("sales trends: %w", err)
	}

	trends := make(response.SalesTrendsResponse)
	for _, b := range bookings {
		if !b.Status.IsCompleted() || b.BookingDate.IsZero() {
			continue
		}
		month := strings.ToUpper(b.BookingDate.Month().String())
		trends[month] += price(b)
	}

	s.log.Debug("Sales trends computed", zap.Int("months", len(trends)))
	return trends, nil
}

func price(b *entity.Booking) float64 {
	if b.TotalPrice == nil {
		return 0
	}
	return *b.TotalPrice
}
