package models

import "time"

// Promotion is a site-wide banner/popup offer. Active gates public visibility.
type Promotion struct {
	ID           int       `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	DiscountText string    `db:"discount_text" json:"discount_text"`
	ButtonText   string    `db:"button_text" json:"button_text"`
	ButtonLink   string    `db:"button_link" json:"button_link"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type PromotionInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	DiscountText string `json:"discount_text"`
	ButtonText   string `json:"button_text"`
	ButtonLink   string `json:"button_link"`
	Active       *bool  `json:"active"`
}
