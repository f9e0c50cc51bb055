package models

import "time"

// Destination is a catalog entry for a safari location. The public API only
// ever sees rows with Published set.
type Destination struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Duration    string    `db:"duration" json:"duration"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Category    string    `db:"category" json:"category"`
	Country     string    `db:"country" json:"country"`
	Tags        string    `db:"tags" json:"tags"`
	BestMonths  string    `db:"best_months" json:"best_months"`
	Published   bool      `db:"published" json:"published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DestinationInput covers both create and full update. Category, country and
// tags stay free text; the source never declared a closed set for them.
type DestinationInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Country     string  `json:"country"`
	Tags        string  `json:"tags"`
	BestMonths  string  `json:"best_months"`
	Published   *bool   `json:"published"`
}
