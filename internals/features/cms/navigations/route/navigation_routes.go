package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/cms/navigations/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/menu
func NavigationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNavigationController(db)
	api.Get("/schools/:idOrSlug/menu", ctl.TreePublic)
}

// Base path: /api/a/navigations
func NavigationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNavigationController(db)

	grp := api.Group("/navigations",
		featuresMiddleware.RequirePermission(constants.PermManageContent),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
