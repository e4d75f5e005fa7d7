package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/cms/pages/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/pages/*
func PagePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPageController(db)
	api.Get("/schools/:idOrSlug/pages/*", ctl.GetPublic)
}

// Base path: /api/a/pages
func PageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPageController(db)

	grp := api.Group("/pages",
		featuresMiddleware.RequirePermission(constants.PermManageContent),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/sections", ctl.AddSection)
	grp.Delete("/:id/sections/:sectionId", ctl.DeleteSection)

	// Sections without a page are reusable global blocks.
	sec := api.Group("/sections",
		featuresMiddleware.RequirePermission(constants.PermManageContent),
	)
	sec.Get("/", ctl.ListGlobalSections)
	sec.Post("/", ctl.CreateGlobalSection)
	sec.Put("/:sectionId", ctl.UpdateSection)
	sec.Delete("/:sectionId", ctl.DeleteGlobalSection)
}
