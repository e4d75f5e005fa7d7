package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/cms/documents/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/documents
func DocumentPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDocumentController(db)
	api.Get("/schools/:idOrSlug/documents", ctl.ListPublic)
	api.Get("/schools/:idOrSlug/documents/:id/download", ctl.Download)
}

// Base path: /api/a/documents
func DocumentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDocumentController(db)

	grp := api.Group("/documents",
		featuresMiddleware.RequirePermission(constants.PermManageMedia),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
