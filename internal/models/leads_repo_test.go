package models

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCreateBookingStoresPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeadsRepo(db)
	now := time.Now()
	price := 2400.0

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs("Jane Doe", "jane@example.com", "", "Walking Safari", 2, "2026-09-01", &price, BookingStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "email", "phone", "safari_type",
			"number_of_people", "start_date", "total_price", "status", "created_at"}).
			AddRow(1, "Jane Doe", "jane@example.com", "", "Walking Safari", 2, now, price, "pending", now))

	booking, err := repo.CreateBooking(context.Background(), &CreateBookingInput{
		CustomerName:   "Jane Doe",
		Email:          "jane@example.com",
		SafariType:     "Walking Safari",
		NumberOfPeople: 2,
		StartDate:      "2026-09-01",
		TotalPrice:     &price,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != BookingStatusPending {
		t.Errorf("Status = %q, want pending", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateEnquiryStoresNew(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeadsRepo(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO enquiries`).
		WithArgs("Sam", "sam@example.com", "", nil, "Do you run night drives?", EnquiryStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "subject", "message", "status", "created_at"}).
			AddRow(1, "Sam", "sam@example.com", "", nil, "Do you run night drives?", "new", now))

	enquiry, err := repo.CreateEnquiry(context.Background(), &CreateEnquiryInput{
		Name:    "Sam",
		Email:   "sam@example.com",
		Message: "Do you run night drives?",
	})
	if err != nil {
		t.Fatalf("CreateEnquiry: %v", err)
	}
	if enquiry.Status != EnquiryStatusNew {
		t.Errorf("Status = %q, want new", enquiry.Status)
	}
	if enquiry.Subject != nil {
		t.Errorf("Subject = %v, want nil", enquiry.Subject)
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeadsRepo(db)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1 WHERE id = \$2`).
		WithArgs("cancelled", 404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.UpdateBookingStatus(context.Background(), 404, "cancelled"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
