package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingsRepo reads and updates the singleton contact_settings row.
type SettingsRepo struct {
	db *sqlx.DB
}

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetContactSettings returns nil, nil when the row does not exist yet; the
// handlers turn that into an empty object, never an error (first-run tolerance).
func (r *SettingsRepo) GetContactSettings(ctx context.Context) (*ContactSettings, error) {
	var settings ContactSettings
	err := r.db.GetContext(ctx, &settings, `SELECT * FROM contact_settings LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact settings: %w", err)
	}
	return &settings, nil
}

// UpdateContactSettings writes the id = 1 row in place. The row is never
// inserted here; there is exactly one logical row.
func (r *SettingsRepo) UpdateContactSettings(ctx context.Context, in *ContactSettingsInput) (*ContactSettings, error) {
	var settings ContactSettings
	err := r.db.GetContext(ctx, &settings,
		`UPDATE contact_settings SET phone = $1, email = $2, whatsapp = $3, address = $4,
		 office_hours = $5, updated_at = CURRENT_TIMESTAMP WHERE id = 1 RETURNING *`,
		in.Phone, in.Email, in.Whatsapp, in.Address, in.OfficeHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact settings: %w", err)
	}
	return &settings, nil
}
