package ports

import (
	"context"

	"github.com/umesh576/servicehub-cli/internal/domain"
)

// SubmitResult is the raw material for outcome classification: the HTTP
// status and the response body read exactly once. SubmitBooking returns an
// error only for transport failures, never for backend rejections.
type SubmitResult struct {
	Status int
	Body   []byte
}

type BookingGateway interface {
	FetchBookingRecord(ctx context.Context, token string, bookingID int) (domain.BookingRecord, error)
	SubmitBooking(ctx context.Context, token string, payload domain.BookingRequestPayload) (SubmitResult, error)
}
