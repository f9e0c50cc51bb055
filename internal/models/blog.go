package models

import "time"

type Blog struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  string    `db:"category" json:"category"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	ReadTime  string    `db:"read_time" json:"read_time"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BlogInput: a nil Published means "published" — only an explicit false keeps
// a post hidden, matching the original intake behavior.
type BlogInput struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	ReadTime  string `json:"read_time"`
	Published *bool  `json:"published"`
}
