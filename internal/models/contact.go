package models

import "time"

// ContactSettings is a singleton row (id = 1), updated in place and never
// inserted twice.
type ContactSettings struct {
	ID          int       `db:"id" json:"id"`
	Phone       string    `db:"phone" json:"phone"`
	Email       string    `db:"email" json:"email"`
	Whatsapp    string    `db:"whatsapp" json:"whatsapp"`
	Address     string    `db:"address" json:"address"`
	OfficeHours string    `db:"office_hours" json:"office_hours"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type ContactSettingsInput struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	Address     string `json:"address"`
	OfficeHours string `json:"office_hours"`
}
