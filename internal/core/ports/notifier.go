package ports

import (
	"context"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// Notifier is the outbound webhook sink. Implementations must treat failures
// as non-fatal: errors are reported to the caller for logging and status
// display, never to roll back the transition that triggered them.
type Notifier interface {
	// SubmissionReceived announces a new pending request.
	SubmissionReceived(ctx context.Context, s *domain.Submission) error
	// SubmissionApproved addresses the submitter by Discord mention id when
	// known, by display name otherwise.
	SubmissionApproved(ctx context.Context, s *domain.Submission, mentionID string) error
	// SubmissionRejected includes the rejection reason.
	SubmissionRejected(ctx context.Context, s *domain.Submission, mentionID, reason string) error
}

// NotificationStatusStore records the outcome of the most recent webhook
// dispatch per requester, for transient UI feedback.
type NotificationStatusStore interface {
	Set(ctx context.Context, email, status string) error
	// Get returns the stored status, or "" when none is present.
	Get(ctx context.Context, email string) (string, error)
}
