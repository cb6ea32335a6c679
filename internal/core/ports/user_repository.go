package ports

import (
	"context"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

// UserRepository defines persistence operations for registered identities.
type UserRepository interface {
	// UpsertOnSignIn merge-writes the sign-in fields (display name, photo,
	// last seen). When forceSuperAdmin is true the role is set to super_admin
	// in the same write; otherwise an existing role is left untouched and a
	// new document starts as user.
	UpsertOnSignIn(ctx context.Context, profile domain.UserProfile, forceSuperAdmin bool) error
	// SetRole force-sets the single role field.
	SetRole(ctx context.Context, email string, role domain.Role) error
	// SetProfileFields sets the user-editable optional fields.
	SetProfileFields(ctx context.Context, email, house, discordID string) error
	FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]*domain.UserProfile, error)
	// Subscribe delivers a full snapshot ordered by last_seen descending on
	// every change, starting with the current state. Released when ctx is
	// cancelled.
	Subscribe(ctx context.Context) (<-chan []*domain.UserProfile, error)
}
