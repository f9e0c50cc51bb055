package models

import "time"

// Package is a bookable safari package. Itinerary, includes and excludes are
// delimiter-joined text blobs, not normalized sub-tables.
type Package struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Duration    string    `db:"duration" json:"duration"`
	Price       float64   `db:"price" json:"price"`
	Tag         string    `db:"tag" json:"tag"`
	Type        string    `db:"type" json:"type"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Description string    `db:"description" json:"description"`
	Itinerary   string    `db:"itinerary" json:"itinerary"`
	Includes    string    `db:"includes" json:"includes"`
	Excludes    string    `db:"excludes" json:"excludes"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PackageInput struct {
	Name        string  `json:"name" binding:"required"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Tag         string  `json:"tag"`
	Type        string  `json:"type"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	Itinerary   string  `json:"itinerary"`
	Includes    string  `json:"includes"`
	Excludes    string  `json:"excludes"`
	Published   *bool   `json:"published"`
}
