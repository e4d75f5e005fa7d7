package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/notifications/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/u/notifications — scope resolution is mounted inline since
// the self group does not carry it globally.
func NotificationSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	grp := api.Group("/notifications", featuresMiddleware.UseTenantScope(db))
	grp.Get("/", ctl.ListMine)
	grp.Put("/read-all", ctl.MarkAllRead)
	grp.Put("/:id/read", ctl.MarkRead)
}
