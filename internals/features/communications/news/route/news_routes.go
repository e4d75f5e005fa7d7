package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/communications/news/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/news
func NewsPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNewsController(db)
	api.Get("/schools/:idOrSlug/news", ctl.ListPublic)
	api.Get("/schools/:idOrSlug/news/:newsSlug", ctl.GetPublic)
}

// Base path: /api/a/news
func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNewsController(db)

	grp := api.Group("/news",
		featuresMiddleware.RequirePermission(constants.PermManageComms),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
