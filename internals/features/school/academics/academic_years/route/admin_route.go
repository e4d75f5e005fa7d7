package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/academics/academic_years/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/academic-years
func AcademicYearAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)

	grp := api.Group("/academic-years",
		featuresMiddleware.RequirePermission(constants.PermManageAcademics),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
