package ports

import (
	"context"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// SubmissionRepository defines persistence operations for leave submissions.
// The store assigns ids on Create and orders snapshots by submission instant,
// descending.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error
	FindByID(ctx context.Context, id string) (*domain.Submission, error)
	// UpdateStatus sets the new status and, for rejections, the reason in a
	// single per-document write.
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus, rejectionReason string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Submission, error)
	// Subscribe delivers a full snapshot on every change to the collection,
	// starting with the current state. The subscription is released when ctx
	// is cancelled.
	Subscribe(ctx context.Context) (<-chan []*domain.Submission, error)
}
