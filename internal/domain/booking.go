package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingRequested BookingStatus = "REQUESTED"
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// BookingRecord is owned by the backend. The client only reads it back; the
// single write path is the submission call that creates it.
type BookingRecord struct {
	ID          int
	ServiceID   int
	Status      BookingStatus
	Message     string
	BookingDate time.Time
	Price       float64
}

// ClassifyBookingStatus buckets the backend's free-text status into the
// closed status set. Unrecognised text falls back to REQUESTED.
func ClassifyBookingStatus(raw string) BookingStatus {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case lowered == "":
		return BookingRequested
	case strings.Contains(lowered, "pending"), strings.Contains(lowered, "waiting"):
		return BookingPending
	case strings.Contains(lowered, "confirmed"), strings.Contains(lowered, "approved"):
		return BookingConfirmed
	case strings.Contains(lowered, "completed"), strings.Contains(lowered, "done"):
		return BookingCompleted
	case strings.Contains(lowered, "cancelled"), strings.Contains(lowered, "rejected"):
		return BookingCancelled
	default:
		return BookingRequested
	}
}

// BookingRequestPayload is the finalized structure sent to create a booking.
// It must only ever be built from a resolved identity and a validated draft;
// NewBookingRequest in the application layer enforces that.
type BookingRequestPayload struct {
	ServiceID int    `json:"serviceId"`
	UserID    int    `json:"userId"`
	Time      string `json:"time"`
	Message   string `json:"message"`
}
