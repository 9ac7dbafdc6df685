package cmd

import (
	"fmt"
	"io"

	"github.com/umesh576/servicehub-cli/internal/adapters/render/booking"
	"github.com/umesh576/servicehub-cli/internal/application"
	"github.com/umesh576/servicehub-cli/internal/domain"
)

func rejectionMessage(reason domain.RejectReason) string {
	switch reason {
	case domain.RejectNoCredential:
		return "Please login to continue."
	case domain.RejectInvalidOrExpired:
		return "Session expired. Please login again."
	case domain.RejectMalformedResponse:
		return "Unable to identify user. Please login again."
	default:
		return "Failed to reach the server. Please try again."
	}
}

// reportRejection renders a session rejection as an inline message plus a
// navigation hint, then surfaces the original error so the exit code is
// non-zero.
func reportRejection(out io.Writer, err error, redirect string) error {
	reason, ok := domain.RejectionReason(err)
	if !ok {
		return err
	}

	outcome := application.Outcome{
		Kind:     application.OutcomeRejected,
		Message:  rejectionMessage(reason),
		Navigate: application.IntentForRejection(reason, redirect),
	}
	_, _ = fmt.Fprintln(out, booking.RenderOutcome(outcome))

	return err
}
