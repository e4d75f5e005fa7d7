package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/parents/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/parents
func ParentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewParentController(db)

	grp := api.Group("/parents",
		featuresMiddleware.RequirePermission(constants.PermManageStudents),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Get("/:id/students", ctl.StudentsOf)
	grp.Post("/:id/students", ctl.LinkStudent)
	grp.Delete("/:id/students/:studentId", ctl.UnlinkStudent)
}
