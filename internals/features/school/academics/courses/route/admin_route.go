package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/courses/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/courses
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	grp := api.Group("/courses",
		featuresMiddleware.RequirePermission(constants.PermManageAcademics),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
