package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/communications/announcements/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/announcements
func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnnouncementController(db)
	api.Get("/schools/:idOrSlug/announcements", ctl.ListPublic)
}

// Base path: /api/a/announcements
func AnnouncementAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnnouncementController(db)

	grp := api.Group("/announcements",
		featuresMiddleware.RequirePermission(constants.PermManageComms),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
