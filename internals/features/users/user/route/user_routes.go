package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/users/user/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/u — self-service endpoints for any signed-in account.
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	grp := api.Group("/users")
	grp.Get("/me", ctl.Me)
	grp.Post("/change-password", featuresMiddleware.UseTenantScope(db), ctl.ChangePassword)
}

// Base path: /api/a/users — org admin account management.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	grp := api.Group("/users",
		featuresMiddleware.RequirePermission(constants.PermManageUsers),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/change-password", ctl.ChangePassword)
}
