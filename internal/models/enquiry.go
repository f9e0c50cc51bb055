package models

import "time"

const EnquiryStatusNew = "new"

type Enquiry struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Subject   *string   `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateEnquiryInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone"`
	Subject *string `json:"subject"`
	Message string  `json:"message" binding:"required"`
}
