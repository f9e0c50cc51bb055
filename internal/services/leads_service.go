package services

import (
	"context"

	"github.com/wildwave/safaris/internal/models"
)

// LeadsService handles booking and enquiry intake plus admin status updates.
type LeadsService struct {
	leads    *models.LeadsRepo
	settings *models.SettingsRepo
}

func NewLeadsService(leads *models.LeadsRepo, settings *models.SettingsRepo) *LeadsService {
	return &LeadsService{leads: leads, settings: settings}
}

func (s *LeadsService) CreateBooking(ctx context.Context, in *models.CreateBookingInput) (*models.Booking, error) {
	return s.leads.CreateBooking(ctx, in)
}

func (s *LeadsService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.leads.ListBookings(ctx)
}

func (s *LeadsService) UpdateBookingStatus(ctx context.Context, id int, status string) (*models.Booking, error) {
	return s.leads.UpdateBookingStatus(ctx, id, status)
}

func (s *LeadsService) CreateEnquiry(ctx context.Context, in *models.CreateEnquiryInput) (*models.Enquiry, error) {
	return s.leads.CreateEnquiry(ctx, in)
}

func (s *LeadsService) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	return s.leads.ListEnquiries(ctx)
}

func (s *LeadsService) UpdateEnquiryStatus(ctx context.Context, id int, status string) (*models.Enquiry, error) {
	return s.leads.UpdateEnquiryStatus(ctx, id, status)
}

func (s *LeadsService) ContactSettings(ctx context.Context) (*models.ContactSettings, error) {
	return s.settings.GetContactSettings(ctx)
}

func (s *LeadsService) UpdateContactSettings(ctx context.Context, in *models.ContactSettingsInput) (*models.ContactSettings, error) {
	return s.settings.UpdateContactSettings(ctx, in)
}
