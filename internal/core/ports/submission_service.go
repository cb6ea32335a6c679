package ports

import (
	"context"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// Viewer identifies the actor behind an operation together with their
// resolved effective role.
type Viewer struct {
	Email string
	Role  domain.Role
}

// SubmitInput carries the data collected from the leave form.
type SubmitInput struct {
	StudentName string
	Email       string
	Date        string
	Reason      string
	LeaveTime   string
}

// SubmissionService governs the leave-request lifecycle. Approve, Reject and
// Delete are guarded: callers lacking the required role get a silent no-op
// (nil error, no mutation, no notification) — the UI never offers those
// actions to ineligible viewers, so the guard is defence in depth.
//
// Approve and Reject report whether the transition was actually applied, so
// callers can tell a real state change from a guard rejection, a missing id,
// or a terminal-state no-op (all of which return false, nil).
type SubmissionService interface {
	Submit(ctx context.Context, viewer Viewer, in SubmitInput) (*domain.Submission, error)
	Approve(ctx context.Context, viewer Viewer, id string) (bool, error)
	Reject(ctx context.Context, viewer Viewer, id, reason string) (bool, error)
	Delete(ctx context.Context, viewer Viewer, id string) error
}
