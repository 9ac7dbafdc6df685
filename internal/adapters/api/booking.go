package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

type bookingSchema struct {
	ID          int     `json:"id"`
	ServiceID   int     `json:"serviceId"`
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	BookingDate string  `json:"bookingDate"`
	Price       float64 `json:"price"`
}

func (c *Client) FetchBookingRecord(ctx context.Context, token string, bookingID int) (domain.BookingRecord, error) {
	path := fmt.Sprintf("/bookservices/%d", bookingID)

	status, body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return domain.BookingRecord{}, fmt.Errorf("fetch booking record: %w", err)
	}
	if status == http.StatusNotFound {
		return domain.BookingRecord{}, fmt.Errorf("booking %d: %w", bookingID, domain.ErrNotFound)
	}
	if !accepted(status) {
		return domain.BookingRecord{}, fmt.Errorf("fetch booking record: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var decoded bookingSchema
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.BookingRecord{}, fmt.Errorf("decode booking record: %w", domain.ErrMalformedResponse)
	}

	return domain.BookingRecord{
		ID:          decoded.ID,
		ServiceID:   decoded.ServiceID,
		Status:      domain.ClassifyBookingStatus(decoded.Status),
		Message:     decoded.Message,
		BookingDate: parseBookingDate(decoded.BookingDate),
		Price:       decoded.Price,
	}, nil
}

// SubmitBooking posts the payload and hands the raw status and body back for
// classification. Backend rejections are not errors here.
func (c *Client) SubmitBooking(ctx context.Context, token string, payload domain.BookingRequestPayload) (ports.SubmitResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ports.SubmitResult{}, fmt.Errorf("encode booking payload: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/bookservices/book", token, encoded)
	if err != nil {
		return ports.SubmitResult{}, fmt.Errorf("submit booking: %w", err)
	}

	return ports.SubmitResult{Status: status, Body: body}, nil
}

// parseBookingDate tolerates the timestamp formats the backend has been seen
// emitting; anything else degrades to the zero time.
func parseBookingDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", domain.DateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
