package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/users/roles/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/roles
func RoleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoleController(db)

	grp := api.Group("/roles",
		featuresMiddleware.RequirePermission(constants.PermManageRoles),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
