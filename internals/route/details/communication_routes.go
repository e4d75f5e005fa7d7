// file: internals/route/details/communication_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "schoolhub_backend/internals/features/communications/announcements/route"
	eventRoute "schoolhub_backend/internals/features/communications/events/route"
	newsRoute "schoolhub_backend/internals/features/communications/news/route"
	notificationRoute "schoolhub_backend/internals/features/communications/notifications/route"
)

func CommunicationPublicRoutes(api fiber.Router, db *gorm.DB) {
	newsRoute.NewsPublicRoutes(api, db)
	eventRoute.EventPublicRoutes(api, db)
	announcementRoute.AnnouncementPublicRoutes(api, db)
}

func CommunicationSelfRoutes(api fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationSelfRoutes(api, db)
}

func CommunicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	newsRoute.NewsAdminRoutes(api, db)
	eventRoute.EventAdminRoutes(api, db)
	announcementRoute.AnnouncementAdminRoutes(api, db)
}
