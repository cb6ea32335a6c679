package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

// AccountService implements sign-in synchronisation and role management.
type AccountService struct {
	users    ports.UserRepository
	verifier ports.TokenVerifier

	jwtSecret       string
	tokenTTL        time.Duration
	superAdminEmail string
	allowedDomain   string

	logger zerolog.Logger
	now    func() time.Time
}

func NewAccountService(
	users ports.UserRepository,
	verifier ports.TokenVerifier,
	jwtSecret string,
	tokenTTL time.Duration,
	superAdminEmail string,
	allowedDomain string,
	logger zerolog.Logger,
) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{
		users:           users,
		verifier:        verifier,
		jwtSecret:       jwtSecret,
		tokenTTL:        tokenTTL,
		superAdminEmail: superAdminEmail,
		allowedDomain:   allowedDomain,
		logger:          logger,
		now:             time.Now,
	}
}

// SignIn verifies the ID token, enforces the allowed sign-in domain, upserts
// the profile with a fresh last-seen instant, and mints a session token. The
// super-admin email has its role forced inside the same upsert. A failed
// profile sync is logged but does not block the sign-in.
func (s *AccountService) SignIn(ctx context.Context, idToken string) (*ports.SignInResult, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("id token verification failed")
		return nil, domain.ErrInvalidIDToken
	}

	if s.allowedDomain != "" && !strings.HasSuffix(identity.Email, s.allowedDomain) {
		s.logger.Info().Str("email", identity.Email).Msg("sign-in refused: domain not allowed")
		return nil, domain.ErrDomainNotAllowed
	}

	profile := domain.UserProfile{
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		LastSeen:    s.now().UTC(),
	}
	forceSuperAdmin := identity.Email == s.superAdminEmail
	if err := s.users.UpsertOnSignIn(ctx, profile, forceSuperAdmin); err != nil {
		s.logger.Error().Err(err).Str("email", identity.Email).Msg("profile sync failed")
	}

	stored, err := s.users.FindByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("email", identity.Email).Msg("profile lookup failed")
		}
		stored = &profile
	}

	registry := map[string]domain.UserProfile{stored.Email: *stored}
	role := domain.ResolveRole(identity.Email, registry, s.superAdminEmail)

	token, err := s.generateToken(identity.Email, identity.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	s.logger.Info().Str("email", identity.Email).Str("role", string(role)).Msg("signed in")
	return &ports.SignInResult{Token: token, Profile: stored, Role: role}, nil
}

// UpdateProfile persists the user-editable optional fields.
func (s *AccountService) UpdateProfile(ctx context.Context, email, house, discordID string) error {
	if err := s.users.SetProfileFields(ctx, email, house, discordID); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("profile update failed")
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SetRole toggles another user's role between user and admin. Callers
// without role-management rights get a silent no-op. The super-admin
// identity is protected: its role is never changed through this path, and
// promoting anyone to super_admin is not supported.
func (s *AccountService) SetRole(ctx context.Context, viewer ports.Viewer, targetEmail string, newRole domain.Role) error {
	if !viewer.Role.CanManageRoles() {
		s.logger.Debug().Str("email", viewer.Email).Str("target", targetEmail).Msg("role change blocked by guard")
		return nil
	}
	if targetEmail == s.superAdminEmail {
		return domain.ErrProtectedUser
	}
	if newRole != domain.RoleUser && newRole != domain.RoleAdmin {
		return fmt.Errorf("set role: role %q cannot be assigned", newRole)
	}

	if err := s.users.SetRole(ctx, targetEmail, newRole); err != nil {
		s.logger.Error().Err(err).Str("target", targetEmail).Msg("role change failed")
		return fmt.Errorf("set role: %w", err)
	}

	s.logger.Info().Str("target", targetEmail).Str("role", string(newRole)).Str("changed_by", viewer.Email).Msg("role changed")
	return nil
}

// RemoveUser deletes a registered identity. Guarded by CanDelete; the
// super-admin identity can never be removed.
func (s *AccountService) RemoveUser(ctx context.Context, viewer ports.Viewer, targetEmail string) error {
	if !viewer.Role.CanDelete() {
		s.logger.Debug().Str("email", viewer.Email).Str("target", targetEmail).Msg("user removal blocked by guard")
		return nil
	}
	if targetEmail == s.superAdminEmail {
		return domain.ErrProtectedUser
	}

	if err := s.users.Delete(ctx, targetEmail); err != nil {
		s.logger.Error().Err(err).Str("target", targetEmail).Msg("user removal failed")
		return fmt.Errorf("remove user: %w", err)
	}

	s.logger.Info().Str("target", targetEmail).Str("removed_by", viewer.Email).Msg("user removed")
	return nil
}

func (s *AccountService) generateToken(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
