package domain

import "testing"

const superAdmin = "root@example.com"

func TestResolveRole_SuperAdminOverridesStoredRole(t *testing.T) {
	registry := map[string]UserProfile{
		superAdmin: {Email: superAdmin, Role: RoleUser}, // stale/tampered record
	}
	if got := ResolveRole(superAdmin, registry, superAdmin); got != RoleSuperAdmin {
		t.Errorf("super admin email must always resolve to super_admin, got %q", got)
	}
}

func TestResolveRole_UnregisteredDefaultsToUser(t *testing.T) {
	if got := ResolveRole("nobody@example.com", map[string]UserProfile{}, superAdmin); got != RoleUser {
		t.Errorf("expected user, got %q", got)
	}
}

func TestResolveRole_InvalidStoredRoleDefaultsToUser(t *testing.T) {
	registry := map[string]UserProfile{
		"a@example.com": {Email: "a@example.com", Role: Role("owner")},
	}
	if got := ResolveRole("a@example.com", registry, superAdmin); got != RoleUser {
		t.Errorf("expected user for unrecognised stored role, got %q", got)
	}
}

func TestResolveRole_RegisteredAdmin(t *testing.T) {
	registry := map[string]UserProfile{
		"a@example.com": {Email: "a@example.com", Role: RoleAdmin},
	}
	if got := ResolveRole("a@example.com", registry, superAdmin); got != RoleAdmin {
		t.Errorf("expected admin, got %q", got)
	}
}

func TestResolveRole_EmptyEmail(t *testing.T) {
	if got := ResolveRole("", map[string]UserProfile{}, superAdmin); got != RoleUser {
		t.Errorf("unauthenticated default must be user, got %q", got)
	}
}

func TestRolePredicates(t *testing.T) {
	cases := []struct {
		role        Role
		approve     bool
		viewAll     bool
		del         bool
		manageRoles bool
	}{
		{RoleUser, false, false, false, false},
		{RoleAdmin, true, true, false, false},
		{RoleSuperAdmin, true, true, true, true},
	}
	for _, tc := range cases {
		if tc.role.CanApprove() != tc.approve {
			t.Errorf("%s.CanApprove() = %v", tc.role, !tc.approve)
		}
		if tc.role.CanViewAll() != tc.viewAll {
			t.Errorf("%s.CanViewAll() = %v", tc.role, !tc.viewAll)
		}
		if tc.role.CanDelete() != tc.del {
			t.Errorf("%s.CanDelete() = %v", tc.role, !tc.del)
		}
		if tc.role.CanManageRoles() != tc.manageRoles {
			t.Errorf("%s.CanManageRoles() = %v", tc.role, !tc.manageRoles)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	if !StatusPending.CanTransitionTo(StatusApproved) {
		t.Error("Pending -> Approved must be allowed")
	}
	if !StatusPending.CanTransitionTo(StatusRejected) {
		t.Error("Pending -> Rejected must be allowed")
	}
	for _, terminal := range []SubmissionStatus{StatusApproved, StatusRejected} {
		if !terminal.Terminal() {
			t.Errorf("%s must be terminal", terminal)
		}
		for _, next := range []SubmissionStatus{StatusPending, StatusApproved, StatusRejected} {
			if terminal.CanTransitionTo(next) {
				t.Errorf("%s -> %s must not be allowed", terminal, next)
			}
		}
	}
}
