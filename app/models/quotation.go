package models

import "time"

// Quotation is the persisted record behind a quotation document. Rendering the
// document itself is handled by external tooling.
type Quotation struct {
	ID        string          `json:"id"`
	Number    int             `json:"number"`
	Customer  string          `json:"customer" validate:"required"`
	CourseID  *string         `json:"course_id,omitempty"`
	Amount    float64         `json:"amount" validate:"gte=0"`
	Status    QuotationStatus `json:"status"`
	IssuedAt  time.Time       `json:"issued_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Course    *Course         `json:"course,omitempty"`
}
