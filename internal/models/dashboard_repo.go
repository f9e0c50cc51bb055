package models

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const BookingStatusConfirmed = "confirmed"

// DashboardRepo runs the dashboard sub-queries. They are independent reads,
// not a transaction; the caller aborts on the first failure.
type DashboardRepo struct {
	db *sqlx.DB
}

func NewDashboardRepo(db *sqlx.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountBookings(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings`)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// ConfirmedRevenue sums total_price over confirmed bookings, 0 when none.
func (r *DashboardRepo) ConfirmedRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.GetContext(ctx, &revenue,
		`SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = $1`, BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to sum confirmed revenue: %w", err)
	}
	return revenue, nil
}

// CountBookingCustomers counts distinct customer emails across all bookings.
func (r *DashboardRepo) CountBookingCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(DISTINCT email) FROM bookings`)
	if err != nil {
		return 0, fmt.Errorf("failed to count booking customers: %w", err)
	}
	return count, nil
}

func (r *DashboardRepo) CountConfirmedBookings(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings WHERE status = $1`, BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	return count, nil
}

func (r *DashboardRepo) RecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT * FROM bookings ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}
	return bookings, nil
}

// BookingsBySafariType groups booking counts by the free-text safari type
// label. The column alias "country" is what the admin UI charts expect.
func (r *DashboardRepo) BookingsBySafariType(ctx context.Context) ([]CountryStat, error) {
	stats := []CountryStat{}
	err := r.db.SelectContext(ctx, &stats,
		`SELECT safari_type AS country, COUNT(*) AS bookings FROM bookings GROUP BY safari_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to group bookings by safari type: %w", err)
	}
	return stats, nil
}

// RevenueByMonth is the six-month revenue trend, bucketed by month label.
func (r *DashboardRepo) RevenueByMonth(ctx context.Context) ([]MonthRevenue, error) {
	revenue := []MonthRevenue{}
	err := r.db.SelectContext(ctx, &revenue,
		`SELECT TO_CHAR(created_at, 'Mon') AS month, COALESCE(SUM(total_price), 0) AS revenue
		 FROM bookings
		 WHERE created_at >= NOW() - INTERVAL '6 months'
		 GROUP BY TO_CHAR(created_at, 'Mon'), EXTRACT(MONTH FROM created_at)
		 ORDER BY EXTRACT(MONTH FROM created_at)`)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue by month: %w", err)
	}
	return revenue, nil
}
