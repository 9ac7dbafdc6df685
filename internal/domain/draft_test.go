package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validationNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func draftDate(daysFromNow int) string {
	return validationNow.AddDate(0, 0, daysFromNow).Format(DateLayout)
}

func TestDraftValidatePassesWithinWindow(t *testing.T) {
	t.Parallel()

	for _, days := range []int{0, 1, 3, 59, 60} {
		draft := BookingDraft{
			Date:    draftDate(days),
			Time:    "11:00 AM",
			Message: "Fix the kitchen sink leak please",
		}

		assert.Empty(t, draft.Validate(validationNow), "date today+%d should pass", days)
	}
}

func TestDraftValidateDateRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "missing", date: "", want: "Please select a date"},
		{name: "yesterday", date: draftDate(-1), want: "Cannot select a past date"},
		{name: "long past", date: draftDate(-365), want: "Cannot select a past date"},
		{name: "beyond window", date: draftDate(61), want: "Please select a date within the next 60 days"},
		{name: "far beyond window", date: draftDate(400), want: "Please select a date within the next 60 days"},
		{name: "garbage", date: "next tuesday", want: "Please select a valid date (YYYY-MM-DD)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := BookingDraft{Date: tt.date, Time: "11:00 AM", Message: "Fix the kitchen sink leak please"}

			errs := draft.Validate(validationNow)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[FieldDate])
		})
	}
}

func TestDraftValidateTimeSlotRules(t *testing.T) {
	t.Parallel()

	slots := TimeSlots()
	require.Len(t, slots, 11)
	assert.Equal(t, "09:00 AM", slots[0])
	assert.Equal(t, "07:00 PM", slots[len(slots)-1])

	for _, slot := range slots {
		draft := BookingDraft{Date: draftDate(3), Time: slot, Message: "Fix the kitchen sink leak please"}
		assert.Empty(t, draft.Validate(validationNow), "slot %q should pass", slot)
	}

	for _, slot := range []string{"", "08:00 AM", "8:00 PM", "11:30 AM", "19:00"} {
		draft := BookingDraft{Date: draftDate(3), Time: slot, Message: "Fix the kitchen sink leak please"}
		errs := draft.Validate(validationNow)
		require.Len(t, errs, 1, "slot %q should fail", slot)
		assert.Contains(t, errs[FieldTime], "Please select a time slot")
	}
}

func TestDraftValidateMessageTrimmedLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		passes  bool
	}{
		{name: "missing", message: "", passes: false},
		{name: "nine chars after trim", message: "too short", passes: false},
		{name: "padded nine chars", message: "  too short  ", passes: false},
		{name: "exactly ten", message: "0123456789", passes: true},
		{name: "padded ten", message: "  0123456789  ", passes: true},
		{name: "long message", message: "Need deep cleaning for my 2BHK apartment", passes: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := BookingDraft{Date: draftDate(3), Time: "11:00 AM", Message: tt.message}

			errs := draft.Validate(validationNow)
			if tt.passes {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			passes := len(strings.TrimSpace(tt.message)) >= 10
			assert.False(t, passes)
			assert.NotEmpty(t, errs[FieldMessage])
		})
	}
}

func TestDraftValidateCollectsIndependentErrors(t *testing.T) {
	t.Parallel()

	draft := BookingDraft{}

	errs := draft.Validate(validationNow)
	require.Len(t, errs, 3)
	assert.Equal(t, "Please select a date", errs[FieldDate])
	assert.Equal(t, "Please select a time slot", errs[FieldTime])
	assert.Equal(t, "Please describe your service requirement", errs[FieldMessage])
}

func TestDraftCombinedTime(t *testing.T) {
	t.Parallel()

	draft := BookingDraft{Date: "2026-03-13", Time: "11:00 AM"}
	assert.Equal(t, "2026-03-13 11:00 AM", draft.CombinedTime())
}
