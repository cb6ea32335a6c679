package ports

import (
	"context"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// GoogleIdentity is what the external sign-in provider yields after
// verifying an ID token.
type GoogleIdentity struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

// TokenVerifier abstracts the sign-in provider's token check.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// SignInResult is returned after a successful sign-in sync.
type SignInResult struct {
	Token   string
	Profile *domain.UserProfile
	Role    domain.Role
}

// AccountService handles sign-in synchronisation, profile updates, and
// super-admin role management. SetRole and RemoveUser are guarded the same
// way lifecycle transitions are: unauthorized callers get a silent no-op.
// Both refuse to touch the configured super-admin identity.
type AccountService interface {
	SignIn(ctx context.Context, idToken string) (*SignInResult, error)
	UpdateProfile(ctx context.Context, email, house, discordID string) error
	SetRole(ctx context.Context, viewer Viewer, targetEmail string, newRole domain.Role) error
	RemoveUser(ctx context.Context, viewer Viewer, targetEmail string) error
}
