package constants

import "fmt"

// Role slugs used in JWT claims and Role records.
const (
	RoleOwner   = "owner" // platform admin, cross-tenant
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleTeacher = "teacher"
	RoleUser    = "user"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
	ErrOnlyStaffCanAccess  = "Only staff or admins may access %s."
	ErrOnlyOwnersCanAccess = "Only the platform owner may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleTeacher,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
