package models

// The growth figures have never been computed anywhere in this system; the
// admin UI renders fixed placeholders. Kept as named constants rather than
// derived values so nobody mistakes them for a real trend.
const (
	BookingGrowthPlaceholder = 12.5
	RevenueGrowthPlaceholder = 18.3
)

// DashboardStats is the single aggregation payload for the admin dashboard.
// Field names are camelCase on the wire, unlike the row entities.
type DashboardStats struct {
	TotalBookings  int            `json:"totalBookings"`
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalCustomers int            `json:"totalCustomers"`
	ActiveTours    int            `json:"activeTours"`
	BookingGrowth  float64        `json:"bookingGrowth"`
	RevenueGrowth  float64        `json:"revenueGrowth"`
	RecentBookings []Booking      `json:"recentBookings"`
	CountryData    []CountryStat  `json:"countryData"`
	RevenueData    []MonthRevenue `json:"revenueData"`
}

// CountryStat groups booking counts by safari type label. Percentage is
// always zero on the wire; the admin UI computes its own share.
type CountryStat struct {
	Country    string  `db:"country" json:"country"`
	Bookings   int     `db:"bookings" json:"bookings"`
	Percentage float64 `db:"-" json:"percentage"`
}

type MonthRevenue struct {
	Month   string  `db:"month" json:"month"`
	Revenue float64 `db:"revenue" json:"revenue"`
}
