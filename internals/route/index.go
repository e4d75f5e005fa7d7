// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authService "schoolhub_backend/internals/features/users/auth/service"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
	routeDetails "schoolhub_backend/internals/route/details"
)

// SetupRoutes wires the four surfaces:
//
//	/api/public — no auth, published content only
//	/api/u      — any signed-in account (scope resolved per-route where needed)
//	/api/a      — org admins, tenant scope resolved and enforced
//	/api/o      — platform owner
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := func() fiber.Handler {
		return authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		})
	}

	log.Println("[INFO] Setting up auth routes...")
	base := app.Group("/api")
	routeDetails.AuthRoutes(base, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.TenantPublicRoutes(public, db)
	routeDetails.SchoolPublicRoutes(public, db)
	routeDetails.CommunicationPublicRoutes(public, db)
	// CMS last: the page wildcard must not shadow the other public routes.
	routeDetails.CmsPublicRoutes(public, db)

	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", jwt())
	routeDetails.UserSelfRoutes(user, db)
	routeDetails.CommunicationSelfRoutes(user, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		jwt(),
		featuresMiddleware.UseTenantScope(db),
		featuresMiddleware.IsOrgAdmin(),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.TenantAdminRoutes(admin, db)
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.CmsAdminRoutes(admin, db)
	routeDetails.CommunicationAdminRoutes(admin, db)

	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		jwt(),
		featuresMiddleware.IsPlatformOwner(),
	)
	routeDetails.TenantOwnerRoutes(owner, db)
	routeDetails.SchoolOwnerRoutes(owner, db)
}
