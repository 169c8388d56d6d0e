package models

import "time"

// Booking status values as reported by the booking backend.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// UserRef identifies the customer who requested the booking.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProRef identifies the professional assigned to the booking.
type ProRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CategoryRef identifies the service category of the booking.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Coordinates is a GeoJSON-style point ([longitude, latitude]).
type Coordinates struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Location is the service address for a booking.
type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Coordinates Coordinates `json:"coordinates"`
}

// TimeSlot is a single booked window within the preferred date.
// Start and end are 24-hour "HH:MM" wall-clock times.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Booked    bool   `json:"booked"`
}

// Booking is a read-only snapshot of a service request owned by the booking
// backend. Its lifecycle (status transitions, assignment, cancellation) is
// entirely backend-side; this service only renders and reasons over snapshots.
type Booking struct {
	ID               string      `json:"id"`
	BookingID        string      `json:"bookingId"` // human-readable reference, e.g. "FXB-2024-0042"
	User             UserRef     `json:"user"`
	Pro              ProRef      `json:"pro"`
	Category         CategoryRef `json:"category"`
	IssueDescription string      `json:"issueDescription"`
	Location         Location    `json:"location"`
	PhoneNumber      string      `json:"phoneNumber"`
	PreferredDate    string      `json:"preferredDate"` // "YYYY-MM-DD" or RFC 3339
	PreferredTime    []TimeSlot  `json:"preferredTime"`
	Status           string      `json:"status"`
	RejectedReason   string      `json:"rejectedReason,omitempty"`
	CancelReason     string      `json:"cancelReason,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
