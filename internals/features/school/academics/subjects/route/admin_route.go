package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/subjects/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/subjects
func SubjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	grp := api.Group("/subjects",
		featuresMiddleware.RequirePermission(constants.PermManageAcademics),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
