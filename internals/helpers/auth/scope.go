// file: internals/helpers/auth/scope.go
package helper

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
)

// Scope is the resolved tenant boundary for one request. Every data access
// downstream of the gate filters by OrganizationID (and SchoolID where the
// entity is school-scoped) unless IsOwner is set.
type Scope struct {
	UserID         uuid.UUID
	ProfileID      uuid.UUID
	OrganizationID uuid.UUID
	SchoolID       *uuid.UUID
	RoleSlug       string
	Permissions    map[string]bool
	IsOwner        bool
	IsStaff        bool
}

// ScopeError carries the stable error code the envelope exposes.
type ScopeError struct {
	Status  int
	Code    string
	Message string
}

func (e *ScopeError) Error() string { return e.Message }

var (
	ErrNoProfile = &ScopeError{
		Status: fiber.StatusForbidden, Code: "NO_PROFILE",
		Message: "Account has no profile",
	}
	ErrTenantInactive = &ScopeError{
		Status: fiber.StatusForbidden, Code: "TENANT_INACTIVE",
		Message: "Organization or school is inactive",
	}
)

type scopeRow struct {
	ProfileID      uuid.UUID  `gorm:"column:profile_id"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id"`
	SchoolID       *uuid.UUID `gorm:"column:school_id"`
	RoleSlug       string     `gorm:"column:role_slug"`
	Permissions    []byte     `gorm:"column:permissions"`
	ProfileActive  bool       `gorm:"column:profile_active"`
	OrgActive      bool       `gorm:"column:org_active"`
	SchoolActive   *bool      `gorm:"column:school_active"`
}

// ResolveScope loads the caller's profile, role and tenant flags in one query
// and caches the result in locals for the rest of the request.
func ResolveScope(c *fiber.Ctx, db *gorm.DB) (Scope, error) {
	if v := c.Locals(LocScope); v != nil {
		if sc, ok := v.(Scope); ok {
			return sc, nil
		}
	}

	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return Scope{}, err
	}

	// Platform owner bypasses tenant filtering entirely.
	if IsOwnerFromToken(c) {
		sc := Scope{UserID: userID, RoleSlug: constants.RoleOwner, IsOwner: true, IsStaff: true}
		c.Locals(LocScope, sc)
		return sc, nil
	}

	var row scopeRow
	err = db.Raw(`
		SELECT p.profile_id,
		       p.profile_organization_id AS organization_id,
		       p.profile_school_id       AS school_id,
		       r.role_slug,
		       r.role_permissions        AS permissions,
		       p.profile_is_active       AS profile_active,
		       o.organization_is_active  AS org_active,
		       s.school_is_active        AS school_active
		FROM user_profiles p
		JOIN roles r          ON r.role_id = p.profile_role_id
		JOIN organizations o  ON o.organization_id = p.profile_organization_id
		LEFT JOIN schools s   ON s.school_id = p.profile_school_id
		WHERE p.profile_user_id = ? AND p.profile_deleted_at IS NULL
		LIMIT 1
	`, userID).Scan(&row).Error
	if err != nil {
		return Scope{}, fiber.NewError(fiber.StatusInternalServerError, "Scope resolution failed")
	}
	if row.ProfileID == uuid.Nil {
		return Scope{}, ErrNoProfile
	}
	if !row.ProfileActive || !row.OrgActive || (row.SchoolActive != nil && !*row.SchoolActive) {
		return Scope{}, ErrTenantInactive
	}

	sc := Scope{
		UserID:         userID,
		ProfileID:      row.ProfileID,
		OrganizationID: row.OrganizationID,
		SchoolID:       row.SchoolID,
		RoleSlug:       row.RoleSlug,
		Permissions:    parsePermissions(row.Permissions),
		IsStaff:        IsStaffFromToken(c),
	}
	c.Locals(LocScope, sc)
	return sc, nil
}

// GetScope reads the scope resolved earlier in the middleware chain.
func GetScope(c *fiber.Ctx) (Scope, error) {
	if v := c.Locals(LocScope); v != nil {
		if sc, ok := v.(Scope); ok {
			return sc, nil
		}
	}
	return Scope{}, fiber.NewError(fiber.StatusForbidden, "Tenant scope not resolved")
}

// HasPermission consults the role's capability map. Admin role slugs are
// granted everything; unknown keys default to denied.
func (s Scope) HasPermission(key string) bool {
	if s.IsOwner || s.RoleSlug == constants.RoleAdmin {
		return true
	}
	return s.Permissions[key]
}

func parsePermissions(raw []byte) map[string]bool {
	out := map[string]bool{}
	if len(raw) == 0 {
		return out
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return out
	}
	for k, v := range m {
		switch t := v.(type) {
		case bool:
			out[k] = t
		case float64:
			out[k] = t > 0
		case string:
			out[k] = t == "true" || t == "1" || t == "yes"
		}
	}
	return out
}
