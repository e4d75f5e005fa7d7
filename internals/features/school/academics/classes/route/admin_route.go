package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/classes/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/classes
func ClassAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)

	grp := api.Group("/classes",
		featuresMiddleware.RequirePermission(constants.PermManageAcademics),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
