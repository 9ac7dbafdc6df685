package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format for booking requests.
const DateLayout = "2006-01-02"

// MaxBookingLeadDays is how far ahead a booking date may be, inclusive.
const MaxBookingLeadDays = 60

const minMessageLength = 10

type Field string

const (
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldMessage Field = "message"
)

// FieldErrors holds at most one error per field.
type FieldErrors map[Field]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// TimeSlots returns the fixed hourly booking slots, 09:00 AM through 07:00 PM.
func TimeSlots() []string {
	return []string{
		"09:00 AM",
		"10:00 AM",
		"11:00 AM",
		"12:00 PM",
		"01:00 PM",
		"02:00 PM",
		"03:00 PM",
		"04:00 PM",
		"05:00 PM",
		"06:00 PM",
		"07:00 PM",
	}
}

func ValidTimeSlot(slot string) bool {
	for _, candidate := range TimeSlots() {
		if candidate == slot {
			return true
		}
	}
	return false
}

// BookingDraft is the in-progress, unsubmitted form data. It exists only in
// memory and is discarded after a terminal submission outcome.
type BookingDraft struct {
	Date    string
	Time    string
	Message string
}

// Validate evaluates each field rule independently against the given wall
// clock time. Rule order never affects the result.
func (d BookingDraft) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if msg := validateDate(d.Date, now); msg != "" {
		errs[FieldDate] = msg
	}
	if msg := validateTimeSlot(d.Time); msg != "" {
		errs[FieldTime] = msg
	}
	if msg := validateMessage(d.Message); msg != "" {
		errs[FieldMessage] = msg
	}

	return errs
}

// CombinedTime renders the date and slot the way the booking endpoint
// expects them, e.g. "2026-09-03 11:00 AM".
func (d BookingDraft) CombinedTime() string {
	return d.Date + " " + d.Time
}

func validateDate(raw string, now time.Time) string {
	if raw == "" {
		return "Please select a date"
	}

	selected, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "Please select a valid date (YYYY-MM-DD)"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	selected = time.Date(selected.Year(), selected.Month(), selected.Day(), 0, 0, 0, 0, now.Location())

	if selected.Before(today) {
		return "Cannot select a past date"
	}
	if selected.After(today.AddDate(0, 0, MaxBookingLeadDays)) {
		return "Please select a date within the next 60 days"
	}

	return ""
}

func validateTimeSlot(raw string) string {
	if raw == "" {
		return "Please select a time slot"
	}
	if !ValidTimeSlot(raw) {
		return "Please select a time slot between 09:00 AM and 07:00 PM"
	}

	return ""
}

func validateMessage(raw string) string {
	if raw == "" {
		return "Please describe your service requirement"
	}
	if len(strings.TrimSpace(raw)) < minMessageLength {
		return "Please provide more details (minimum 10 characters)"
	}

	return ""
}
