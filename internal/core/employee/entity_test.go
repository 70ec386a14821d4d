package employee

import (
	"errors"
	"testing"
)

func TestRole_StringAndParse(t *testing.T) {
	t.Parallel()

	want := []string{"MEDIA_TEAM", "MENTOR", "MANAGER", "SOCIAL_MEDIA_TEAM", "TECHNICIAN_SUPERVISOR", "KITCHEN_STAFF"}
	roles := Roles()
	if len(roles) != len(want) {
		t.Fatalf("expected %d roles, got %d", len(want), len(roles))
	}

	for i, role := range roles {
		if int(role) != i {
			t.Fatalf("expected ordinal %d, got %d", i, role)
		}
		if role.String() != want[i] {
			t.Fatalf("expected %s, got %s", want[i], role.String())
		}
		parsed, err := ParseRole(" " + want[i] + " ")
		if err != nil || parsed != role {
			t.Fatalf("ParseRole(%s) = %v, %v", want[i], parsed, err)
		}
	}

	if parsed, err := ParseRole("manager"); err != nil || parsed != RoleManager {
		t.Fatalf("expected case-insensitive parse, got %v, %v", parsed, err)
	}

	if _, err := ParseRole("JANITOR"); !errors.Is(err, ErrInvalidDataPassed) {
		t.Fatalf("expected ErrInvalidDataPassed for unknown role, got %v", err)
	}

	if Role(42).String() != "UNKNOWN" || Role(42).Valid() {
		t.Fatalf("out-of-range role must be invalid")
	}
}

func TestCanAccessGarage_Predicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     Role
		employed bool
		want     bool
	}{
		{RoleMediaTeam, true, true},
		{RoleMediaTeam, false, false},
		{RoleMentor, true, true},
		{RoleMentor, false, false},
		{RoleManager, true, true},
		{RoleManager, false, false},
		{RoleSocialMediaTeam, true, false},
		{RoleSocialMediaTeam, false, false},
		{RoleTechnicianSupervisor, true, false},
		{RoleTechnicianSupervisor, false, false},
		{RoleKitchenStaff, true, false},
		{RoleKitchenStaff, false, false},
		{Role(99), true, false},
	}

	for _, tt := range tests {
		got := CanAccessGarage(&Employee{Address: "0x1", Name: "n", Role: tt.role, IsEmployed: tt.employed})
		if got != tt.want {
			t.Errorf("role=%s employed=%t: expected %t, got %t", tt.role, tt.employed, tt.want, got)
		}
	}

	if CanAccessGarage(nil) {
		t.Fatalf("nil record must not grant access")
	}
}

func TestEmployee_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := &Employee{Address: "0x1", Name: "Original", Role: RoleMentor, IsEmployed: true}
	clone := original.Clone()
	clone.Name = "Changed"
	clone.IsEmployed = false

	if original.Name != "Original" || !original.IsEmployed {
		t.Fatalf("mutating clone changed original: %+v", original)
	}
}

func TestRoleFromName(t *testing.T) {
	t.Parallel()

	if got := RoleFromName(" mentor "); got != RoleMentor {
		t.Fatalf("expected MENTOR, got %s", got)
	}
	got := RoleFromName("JANITOR")
	if got != RoleUnknown || got.Valid() {
		t.Fatalf("expected invalid RoleUnknown, got %d", got)
	}
	if got.GrantsGarageAccess() {
		t.Fatalf("unknown role must never grant access")
	}
}
