package services

import (
	"context"

	"github.com/wildwave/safaris/internal/models"
)

const recentBookingsLimit = 5

// DashboardService assembles the admin dashboard aggregation from independent
// reads. There is no partial response: the first failing sub-query aborts the
// whole thing.
type DashboardService struct {
	dashboard *models.DashboardRepo
}

func NewDashboardService(dashboard *models.DashboardRepo) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	totalBookings, err := s.dashboard.CountBookings(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.dashboard.ConfirmedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.dashboard.CountBookingCustomers(ctx)
	if err != nil {
		return nil, err
	}

	// Confirmed bookings double as the "active tours" figure.
	activeTours, err := s.dashboard.CountConfirmedBookings(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboard.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	countryData, err := s.dashboard.BookingsBySafariType(ctx)
	if err != nil {
		return nil, err
	}

	revenueData, err := s.dashboard.RevenueByMonth(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalBookings:  totalBookings,
		TotalRevenue:   totalRevenue,
		TotalCustomers: totalCustomers,
		ActiveTours:    activeTours,
		BookingGrowth:  models.BookingGrowthPlaceholder,
		RevenueGrowth:  models.RevenueGrowthPlaceholder,
		RecentBookings: recent,
		CountryData:    countryData,
		RevenueData:    revenueData,
	}, nil
}
