package domain

import (
	"errors"
	"time"
)

// SubmissionStatus represents the lifecycle state of a leave request.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "Pending"
	StatusApproved SubmissionStatus = "Approved"
	StatusRejected SubmissionStatus = "Rejected"
)

// validTransitions defines the allowed state machine transitions.
// Approved and Rejected are terminal; the only way out is hard deletion.
var validTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrSubmissionNotFound = errors.New("submission not found")
var ErrUserNotFound = errors.New("user not found")
var ErrProtectedUser = errors.New("user is protected")
var ErrInvalidIDToken = errors.New("invalid id token")
var ErrDomainNotAllowed = errors.New("email domain not allowed")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status transition is defined.
func (s SubmissionStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// Submission is the core aggregate root: a single health-leave request.
// Date and SubmittedAt are stored as display labels (see dates.go), matching
// how the records are rendered and compared.
type Submission struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	CreatedAt       time.Time        `json:"-" bson:"created_at"`
	StudentName     string           `json:"student_name" bson:"student_name"`
	Email           string           `json:"email" bson:"email"`
	Date            string           `json:"date" bson:"date"`
	Reason          string           `json:"reason" bson:"reason"`
	LeaveTime       string           `json:"leave_time" bson:"leave_time"`
	SubmittedAt     string           `json:"submitted_at" bson:"submitted_at"`
	Status          SubmissionStatus `json:"status" bson:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
}
