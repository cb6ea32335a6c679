package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

const notifyTimeout = 10 * time.Second

// Notification status values surfaced to the UI.
const (
	NotifyStatusSending = "sending"
	NotifyStatusSent    = "sent"
	NotifyStatusFailed  = "failed"
)

// SubmissionService implements the leave-request lifecycle.
type SubmissionService struct {
	repo     ports.SubmissionRepository
	users    ports.UserRepository
	notifier ports.Notifier
	status   ports.NotificationStatusStore
	logger   zerolog.Logger

	now      func() time.Time
	dispatch func(func())
}

func NewSubmissionService(
	repo ports.SubmissionRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	status ports.NotificationStatusStore,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		status:   status,
		logger:   logger,
		now:      time.Now,
		dispatch: func(f func()) { go f() },
	}
}

// Submit creates a new submission in Pending with a freshly assigned id and
// captured timestamps. The durable write is the primary effect; the webhook
// announcement is dispatched only after the write succeeds, so a store
// failure never leaves a notified-but-unpersisted request.
func (s *SubmissionService) Submit(ctx context.Context, viewer ports.Viewer, in ports.SubmitInput) (*domain.Submission, error) {
	now := s.now()
	sub := &domain.Submission{
		ID:          uuid.NewString(),
		CreatedAt:   now.UTC(),
		StudentName: in.StudentName,
		Email:       in.Email,
		Date:        in.Date,
		Reason:      in.Reason,
		LeaveTime:   in.LeaveTime,
		SubmittedAt: domain.SubmittedAtLabel(now),
		Status:      domain.StatusPending,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create submission")
		return nil, fmt.Errorf("submit: %w", err)
	}

	s.logger.Info().Str("id", sub.ID).Str("email", sub.Email).Str("date", sub.Date).Msg("submission created")

	s.notify(sub.Email, "submitted", func(ctx context.Context) error {
		return s.notifier.SubmissionReceived(ctx, sub)
	})

	return sub, nil
}

// Approve transitions Pending → Approved. Callers without approval rights
// and submissions that are missing or already terminal are silent no-ops.
// The returned flag is true only when the status was actually written.
func (s *SubmissionService) Approve(ctx context.Context, viewer ports.Viewer, id string) (bool, error) {
	if !viewer.Role.CanApprove() {
		s.logger.Debug().Str("email", viewer.Email).Str("id", id).Msg("approve blocked by guard")
		return false, nil
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("approve: %w", err)
	}
	if !sub.Status.CanTransitionTo(domain.StatusApproved) {
		s.logger.Debug().Str("id", id).Str("status", string(sub.Status)).Msg("approve skipped: terminal status")
		return false, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusApproved, ""); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to approve submission")
		return false, fmt.Errorf("approve: %w", err)
	}

	s.logger.Info().Str("id", id).Str("approver", viewer.Email).Msg("submission approved")

	mention := s.mentionFor(ctx, sub.Email)
	s.notify(sub.Email, "approved", func(ctx context.Context) error {
		return s.notifier.SubmissionApproved(ctx, sub, mention)
	})

	return true, nil
}

// Reject transitions Pending → Rejected, recording the reason. The reason is
// accepted as given; non-emptiness is enforced at the point of collection.
// The returned flag is true only when the status was actually written.
func (s *SubmissionService) Reject(ctx context.Context, viewer ports.Viewer, id, reason string) (bool, error) {
	if !viewer.Role.CanApprove() {
		s.logger.Debug().Str("email", viewer.Email).Str("id", id).Msg("reject blocked by guard")
		return false, nil
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("reject: %w", err)
	}
	if !sub.Status.CanTransitionTo(domain.StatusRejected) {
		s.logger.Debug().Str("id", id).Str("status", string(sub.Status)).Msg("reject skipped: terminal status")
		return false, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusRejected, reason); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to reject submission")
		return false, fmt.Errorf("reject: %w", err)
	}

	s.logger.Info().Str("id", id).Str("approver", viewer.Email).Msg("submission rejected")

	mention := s.mentionFor(ctx, sub.Email)
	s.notify(sub.Email, "rejected", func(ctx context.Context) error {
		return s.notifier.SubmissionRejected(ctx, sub, mention, reason)
	})

	return true, nil
}

// Delete removes a submission entirely, in any state. Not a status
// transition: no notification is sent. Guarded by CanDelete.
func (s *SubmissionService) Delete(ctx context.Context, viewer ports.Viewer, id string) error {
	if !viewer.Role.CanDelete() {
		s.logger.Debug().Str("email", viewer.Email).Str("id", id).Msg("delete blocked by guard")
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return nil
		}
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete submission")
		return fmt.Errorf("delete: %w", err)
	}

	s.logger.Info().Str("id", id).Str("deleted_by", viewer.Email).Msg("submission deleted")
	return nil
}

// mentionFor looks up the submitter's registered Discord mention identity.
// Missing profiles fall back to display-name addressing in the notifier.
func (s *SubmissionService) mentionFor(ctx context.Context, email string) string {
	profile, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Err(err).Str("email", email).Msg("mention lookup failed")
		}
		return ""
	}
	return profile.DiscordID
}

// notify dispatches a webhook send off the caller's critical path and records
// its outcome for UI feedback. Failures are logged, never retried, and never
// roll back the transition that triggered them.
func (s *SubmissionService) notify(email, kind string, send func(context.Context) error) {
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.status.Set(ctx, email, NotifyStatusSending); err != nil {
			s.logger.Debug().Err(err).Str("email", email).Msg("notification status write failed")
		}

		if err := send(ctx); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Str("kind", kind).Msg("notification failed")
			_ = s.status.Set(ctx, email, NotifyStatusFailed)
			return
		}

		_ = s.status.Set(ctx, email, NotifyStatusSent)
		s.logger.Info().Str("email", email).Str("kind", kind).Msg("notification sent")
	})
}
