package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/students/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/students
func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	grp := api.Group("/students",
		featuresMiddleware.RequirePermission(constants.PermManageStudents),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
