package models

import "time"

// PaymentStatus is the quota's payment state as recorded by the backend.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Quota is the cost breakdown a professional files after completing a booking.
// Read-only here: it is created by the pro and mutated by payment callbacks on
// the backend. Amounts are rupees.
type Quota struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"bookingId"`
	LaborCost         float64       `json:"laborCost"`
	MaterialCost      float64       `json:"materialCost,omitempty"`
	AdditionalCharges float64       `json:"additionalCharges,omitempty"`
	TotalCost         float64       `json:"totalCost"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
