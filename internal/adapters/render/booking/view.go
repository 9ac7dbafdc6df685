package booking

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/umesh576/servicehub-cli/internal/application"
	"github.com/umesh576/servicehub-cli/internal/domain"
)

func RenderServiceList(listings []domain.ServiceListing) string {
	s := newStyles()

	lines := []string{
		s.title.Render("ServiceHub Catalog"),
		s.header.Render(fmt.Sprintf("services: %d", len(listings))),
	}

	if len(listings) == 0 {
		lines = append(lines, s.empty.Render("No services available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, listing := range listings {
		lines = append(lines, s.section.Render(renderListing(listing, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderService(listing domain.ServiceListing) string {
	s := newStyles()

	parts := []string{renderListing(listing, s)}
	if listing.Description != "" {
		parts = append(parts, s.detail.Render(listing.Description))
	}
	parts = append(parts, s.detail.Render(fmt.Sprintf("rating %.1f · %d bookings", listing.Rating, listing.BookingCount)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderListing(listing domain.ServiceListing, s styles) string {
	location := listing.Location.Name
	if listing.Location.City != "" {
		location += ", " + listing.Location.City
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.name.Render(fmt.Sprintf("%s (#%d)", listing.Name, listing.ID)),
		s.detail.Render(location),
		s.price.Render(fmt.Sprintf("₹%.2f", listing.Price)),
	)
}

func RenderProfile(view application.ProfileView) string {
	s := newStyles()

	lines := []string{
		s.title.Render(view.User.Name),
		s.detail.Render(view.User.Email),
	}
	if view.User.Phone != "" {
		lines = append(lines, s.detail.Render(view.User.Phone))
	}
	if view.User.Address != "" {
		lines = append(lines, s.detail.Render(view.User.Address))
	}

	if view.Booking == nil {
		lines = append(lines, s.section.Render(s.empty.Render("No booking linked yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	record := []string{
		s.header.Render(fmt.Sprintf("Booking #%d %s", view.Booking.ID, statusBadge(view.Booking.Status, s))),
	}
	if !view.Booking.BookingDate.IsZero() {
		record = append(record, s.detail.Render(view.Booking.BookingDate.Format("2006-01-02 03:04 PM")))
	}
	if view.Booking.Message != "" {
		record = append(record, s.detail.Render(view.Booking.Message))
	}
	if view.Service != nil {
		record = append(record, renderListing(*view.Service, s))
	} else {
		record = append(record, s.empty.Render("Service details unavailable."))
	}

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, record...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusBadge(status domain.BookingStatus, s styles) string {
	label := string(status)

	switch status {
	case domain.BookingPending:
		return s.pending.Render(label)
	case domain.BookingConfirmed:
		return s.confirmed.Render(label)
	case domain.BookingCompleted:
		return s.completed.Render(label)
	case domain.BookingCancelled:
		return s.cancelled.Render(label)
	default:
		return s.requested.Render(label)
	}
}

func RenderFieldErrors(errs domain.FieldErrors) string {
	s := newStyles()

	lines := []string{s.errorMsg.Render("Please fix the errors in the form:")}
	for _, field := range []domain.Field{domain.FieldDate, domain.FieldTime, domain.FieldMessage} {
		if msg, ok := errs[field]; ok {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  %s: %s", field, msg)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderOutcome(outcome application.Outcome) string {
	s := newStyles()

	style := s.errorMsg
	if outcome.Kind == application.OutcomeSuccess {
		style = s.success
	}

	lines := []string{style.Render(outcome.Message)}
	if hint := navigationHint(outcome.Navigate); hint != "" {
		lines = append(lines, s.hint.Render(hint))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func navigationHint(intent domain.NavigationIntent) string {
	switch intent.Route {
	case domain.RouteLogin:
		hint := "Next: servicehub login"
		if intent.Redirect != "" {
			hint += fmt.Sprintf(" (then return to %s)", strings.TrimSpace(intent.Redirect))
		}
		return hint
	case domain.RouteServiceList:
		return "Next: servicehub services"
	case domain.RouteMyBookings:
		return "Next: servicehub profile"
	case domain.RouteHome:
		return "Next: servicehub services"
	default:
		return ""
	}
}
