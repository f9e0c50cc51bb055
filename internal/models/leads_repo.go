package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LeadsRepo holds the lead-capture tables: bookings and enquiries. Rows are
// never deleted through the API; the only mutation after intake is Status.
type LeadsRepo struct {
	db *sqlx.DB
}

func NewLeadsRepo(db *sqlx.DB) *LeadsRepo {
	return &LeadsRepo{db: db}
}

// CreateBooking stores the row with status pending no matter what the caller
// sent; the input type has no status field at all.
func (r *LeadsRepo) CreateBooking(ctx context.Context, in *CreateBookingInput) (*Booking, error) {
	var booking Booking
	err := r.db.GetContext(ctx, &booking,
		`INSERT INTO bookings (customer_name, email, phone, safari_type, number_of_people, start_date, total_price, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`,
		in.CustomerName, in.Email, in.Phone, in.SafariType, in.NumberOfPeople,
		in.StartDate, in.TotalPrice, BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

func (r *LeadsRepo) ListBookings(ctx context.Context) ([]Booking, error) {
	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus accepts any string; the source never declared a closed
// status set.
func (r *LeadsRepo) UpdateBookingStatus(ctx context.Context, id int, status string) (*Booking, error) {
	var booking Booking
	err := r.db.GetContext(ctx, &booking,
		`UPDATE bookings SET status = $1 WHERE id = $2 RETURNING *`, status, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	return &booking, nil
}

func (r *LeadsRepo) CreateEnquiry(ctx context.Context, in *CreateEnquiryInput) (*Enquiry, error) {
	var enquiry Enquiry
	err := r.db.GetContext(ctx, &enquiry,
		`INSERT INTO enquiries (name, email, phone, subject, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		in.Name, in.Email, in.Phone, in.Subject, in.Message, EnquiryStatusNew)
	if err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}
	return &enquiry, nil
}

func (r *LeadsRepo) ListEnquiries(ctx context.Context) ([]Enquiry, error) {
	enquiries := []Enquiry{}
	err := r.db.SelectContext(ctx, &enquiries, `SELECT * FROM enquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	return enquiries, nil
}

func (r *LeadsRepo) UpdateEnquiryStatus(ctx context.Context, id int, status string) (*Enquiry, error) {
	var enquiry Enquiry
	err := r.db.GetContext(ctx, &enquiry,
		`UPDATE enquiries SET status = $1 WHERE id = $2 RETURNING *`, status, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update enquiry %d: %w", id, err)
	}
	return &enquiry, nil
}
