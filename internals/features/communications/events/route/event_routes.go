package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/communications/events/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/events
func EventPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)
	api.Get("/schools/:idOrSlug/events", ctl.ListPublic)
	api.Get("/schools/:idOrSlug/events/:eventSlug", ctl.GetPublic)
}

// Base path: /api/a/events
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	grp := api.Group("/events",
		featuresMiddleware.RequirePermission(constants.PermManageComms),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
