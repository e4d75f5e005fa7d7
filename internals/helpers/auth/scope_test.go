package helper

import (
	"testing"

	"schoolhub_backend/internals/constants"
)

func TestParsePermissions(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		key  string
		want bool
	}{
		{"bool true", `{"students.manage": true}`, "students.manage", true},
		{"bool false", `{"students.manage": false}`, "students.manage", false},
		{"numeric one", `{"content.manage": 1}`, "content.manage", true},
		{"numeric zero", `{"content.manage": 0}`, "content.manage", false},
		{"string true", `{"media.manage": "true"}`, "media.manage", true},
		{"string yes", `{"media.manage": "yes"}`, "media.manage", true},
		{"string junk", `{"media.manage": "maybe"}`, "media.manage", false},
		{"missing key", `{"other": true}`, "media.manage", false},
		{"invalid json", `{broken`, "media.manage", false},
		{"empty", ``, "media.manage", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := parsePermissions([]byte(tc.raw))
			if got := m[tc.key]; got != tc.want {
				t.Errorf("parsePermissions(%q)[%q] = %v, want %v", tc.raw, tc.key, got, tc.want)
			}
		})
	}
}

func TestHasPermission(t *testing.T) {
	member := Scope{
		RoleSlug:    "teacher",
		Permissions: map[string]bool{constants.PermManageStudents: true},
	}
	if !member.HasPermission(constants.PermManageStudents) {
		t.Error("granted key denied")
	}
	if member.HasPermission(constants.PermManageBilling) {
		t.Error("ungranted key allowed")
	}

	admin := Scope{RoleSlug: constants.RoleAdmin}
	if !admin.HasPermission(constants.PermManageBilling) {
		t.Error("admin role must pass every key")
	}

	owner := Scope{IsOwner: true}
	if !owner.HasPermission(constants.PermManageUsers) {
		t.Error("owner must pass every key")
	}

	empty := Scope{RoleSlug: "viewer"}
	if empty.HasPermission(constants.PermManageContent) {
		t.Error("nil permission map must deny")
	}
}
