package application

import (
	"sync"

	"github.com/umesh576/servicehub-cli/internal/domain"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

type FormState string

const (
	FormEditing     FormState = "editing"
	FormSubmittable FormState = "submittable"
)

// BookingForm holds the draft, its per-field errors, and the submission
// status for one booking attempt. Editing a field clears that field's error
// and drops the form back to editing; only a clean Validate makes it
// submittable. The form is owned by a single orchestrator instance and never
// shared across attempts.
type BookingForm struct {
	mu         sync.Mutex
	draft      domain.BookingDraft
	errors     domain.FieldErrors
	state      FormState
	submitting bool
	clock      ports.Clock
}

func NewBookingForm(clock ports.Clock) *BookingForm {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BookingForm{
		errors: domain.FieldErrors{},
		state:  FormEditing,
		clock:  clock,
	}
}

func (f *BookingForm) SetDate(value string) {
	f.edit(domain.FieldDate, func(d *domain.BookingDraft) { d.Date = value })
}

func (f *BookingForm) SetTimeSlot(value string) {
	f.edit(domain.FieldTime, func(d *domain.BookingDraft) { d.Time = value })
}

func (f *BookingForm) SetMessage(value string) {
	f.edit(domain.FieldMessage, func(d *domain.BookingDraft) { d.Message = value })
}

func (f *BookingForm) edit(field domain.Field, apply func(*domain.BookingDraft)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	apply(&f.draft)
	delete(f.errors, field)
	f.state = FormEditing
}

// Validate runs every field rule and reports whether the form became
// submittable. The error set always reflects the latest evaluation.
func (f *BookingForm) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors = f.draft.Validate(f.clock.Now())
	if f.errors.Empty() {
		f.state = FormSubmittable
		return true
	}

	f.state = FormEditing
	return false
}

func (f *BookingForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

func (f *BookingForm) Draft() domain.BookingDraft {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft
}

// Errors returns a copy of the current per-field error set.
func (f *BookingForm) Errors() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(domain.FieldErrors, len(f.errors))
	for field, msg := range f.errors {
		errs[field] = msg
	}

	return errs
}

// BeginSubmit flips the single-flight guard. It reports false when another
// submission is already in flight, in which case no network send may happen.
func (f *BookingForm) BeginSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return false
	}

	f.submitting = true
	return true
}

func (f *BookingForm) EndSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
}

func (f *BookingForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

// Discard drops the draft after a terminal outcome.
func (f *BookingForm) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = domain.BookingDraft{}
	f.errors = domain.FieldErrors{}
	f.state = FormEditing
}
