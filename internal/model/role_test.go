package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"NORMAL_USER":  RoleNormalUser,
		"store_owner":  RoleStoreOwner,
		" SYSTEM_ADMIN ": RoleSystemAdmin,
	}
	for in, want := range cases {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Errorf("ParseRole(%q) = (%q,%v), want (%q,true)", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "ADMIN", "owner", "NORMAL USER"} {
		if _, ok := ParseRole(in); ok {
			t.Errorf("ParseRole(%q) unexpectedly succeeded", in)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleStoreOwner.Valid() {
		t.Error("expected STORE_OWNER to be valid")
	}
	if Role("GUEST").Valid() {
		t.Error("expected GUEST to be invalid")
	}
}
