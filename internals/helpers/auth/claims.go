// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID   = "user_id"
	LocOrgID    = "organization_id"
	LocSchoolID = "school_id"
	LocRole     = "role"
	LocIsOwner  = "is_owner"
	LocIsStaff  = "is_staff"
	LocScope    = "tenant_scope"
)

func localString(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func localBool(c *fiber.Ctx, key string) bool {
	if v := c.Locals(key); v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetUserIDFromToken returns the authenticated user id or 401.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocUserID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return id, nil
}

// GetOrganizationIDFromToken returns the caller's tenant id from claims.
func GetOrganizationIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocOrgID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No tenant in token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid tenant id")
	}
	return id, nil
}

// GetSchoolIDFromToken returns the active school id if the claim is present.
func GetSchoolIDFromToken(c *fiber.Ctx) (*uuid.UUID, error) {
	s := localString(c, LocSchoolID)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Invalid school id")
	}
	return &id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if r := localString(c, LocRole); r != "" {
		return r
	}
	return "user"
}

func IsOwnerFromToken(c *fiber.Ctx) bool { return localBool(c, LocIsOwner) }
func IsStaffFromToken(c *fiber.Ctx) bool { return localBool(c, LocIsStaff) }
