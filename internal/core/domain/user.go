package domain

import "time"

// Role is the effective permission level of a signed-in identity.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is one of the three recognised roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleSuperAdmin
}

// CanApprove reports whether the role may approve or reject submissions.
func (r Role) CanApprove() bool { return r == RoleAdmin || r == RoleSuperAdmin }

// CanViewAll reports whether the role sees every submission, not just its own.
func (r Role) CanViewAll() bool { return r == RoleAdmin || r == RoleSuperAdmin }

// CanDelete reports whether the role may hard-delete submissions and users.
func (r Role) CanDelete() bool { return r == RoleSuperAdmin }

// CanManageRoles reports whether the role may promote/demote other users.
func (r Role) CanManageRoles() bool { return r == RoleSuperAdmin }

// UserProfile models a registered identity, upserted on every sign-in.
// House and DiscordID are user-editable optional fields; unknown legacy
// fields in stored documents are ignored on read.
type UserProfile struct {
	Email       string    `json:"email" bson:"_id"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	PhotoURL    string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	LastSeen    time.Time `json:"last_seen" bson:"last_seen"`
	Role        Role      `json:"role" bson:"role"`
	DiscordID   string    `json:"discord_id,omitempty" bson:"discord_id,omitempty"`
	House       string    `json:"house,omitempty" bson:"house,omitempty"`
}

// ResolveRole derives the effective role for a signed-in email.
//
// The configured super-admin email always resolves to super_admin, even when
// the stored record says otherwise (stale or tampered documents must not
// demote it). Anyone else gets their registered role, defaulting to user when
// no record exists or the stored value is not a recognised role.
func ResolveRole(email string, registry map[string]UserProfile, superAdminEmail string) Role {
	if email == "" {
		return RoleUser
	}
	if email == superAdminEmail {
		return RoleSuperAdmin
	}
	profile, ok := registry[email]
	if !ok || !profile.Role.Valid() {
		return RoleUser
	}
	return profile.Role
}
