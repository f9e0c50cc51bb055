package models

import "time"

// Booking statuses are open strings. Rows start as pending; the admin API is
// the only writer afterwards, and it only ever touches Status.
const BookingStatusPending = "pending"

type Booking struct {
	ID             int       `db:"id" json:"id"`
	CustomerName   string    `db:"customer_name" json:"customer_name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	SafariType     string    `db:"safari_type" json:"safari_type"`
	NumberOfPeople int       `db:"number_of_people" json:"number_of_people"`
	StartDate      time.Time `db:"start_date" json:"start_date"`
	TotalPrice     *float64  `db:"total_price" json:"total_price"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CreateBookingInput deliberately has no status field; callers cannot choose
// one. SafariType is a free-text label, not a foreign key.
type CreateBookingInput struct {
	CustomerName   string   `json:"customer_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone"`
	SafariType     string   `json:"safari_type" binding:"required"`
	NumberOfPeople int      `json:"number_of_people" binding:"required,gt=0"`
	StartDate      string   `json:"start_date" binding:"required"`
	TotalPrice     *float64 `json:"total_price"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}
