// file: internals/middlewares/features/guards.go
package features

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// UseTenantScope resolves the caller's scope once per request (DB-backed) and
// rejects callers without a profile or with an inactive tenant.
func UseTenantScope(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := helperAuth.ResolveScope(c, db)
		if err != nil {
			var se *helperAuth.ScopeError
			if errors.As(err, &se) {
				return helper.JsonErrorCode(c, se.Status, se.Code, se.Message)
			}
			return err
		}
		return c.Next()
	}
}

// IsOrgAdmin requires an admin role inside the resolved tenant (owner passes).
func IsOrgAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc, err := helperAuth.GetScope(c)
		if err != nil {
			return err
		}
		if sc.IsOwner || sc.RoleSlug == constants.RoleAdmin {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin("this resource"))
	}
}

// IsStaff requires a staff-or-above role (owner passes).
func IsStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc, err := helperAuth.GetScope(c)
		if err != nil {
			return err
		}
		if sc.IsOwner || sc.IsStaff || sc.RoleSlug == constants.RoleAdmin || sc.RoleSlug == constants.RoleStaff {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorStaff("this resource"))
	}
}

// IsPlatformOwner gates the /api/o group.
func IsPlatformOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwnerFromToken(c) {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorOwner("this resource"))
	}
}

// RequirePermission checks a capability key against the role's permission map.
func RequirePermission(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc, err := helperAuth.GetScope(c)
		if err != nil {
			return err
		}
		if sc.HasPermission(key) {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Missing permission: "+key)
	}
}
