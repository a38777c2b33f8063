package models

import "time"

// PaymentRequest is what the payment collaborator receives: the final numeric
// total plus the line-item breakdown for receipt display. It never carries the
// intermediate subtotal or tax values.
type PaymentRequest struct {
	BookingID string        `json:"bookingID"`
	UserID    string        `json:"userID"`
	Amount    float64       `json:"amount"`
	Currency  Currency      `json:"currency"`
	Method    string        `json:"method"` // "card" or "cash"
	Lines     []ReceiptLine `json:"lines"`
}

// Invoice is the record produced by a processed payment.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceID"`
	BookingID string    `bson:"booking_id" json:"bookingID"`
	UserID    string    `bson:"user_id" json:"userID"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  Currency  `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"`
	Status    string    `bson:"status" json:"status"` // "pending", "paid", "failed"
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentID,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// TicketPayload is the asynq task payload for e-ticket issuance.
type TicketPayload struct {
	BookingID string `json:"bookingID"`
	InvoiceID string `json:"invoiceID"`
	Method    string `json:"method"`
}
