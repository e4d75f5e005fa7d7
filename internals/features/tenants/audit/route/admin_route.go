package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/tenants/audit/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/audit-logs
func AuditLogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuditLogController(db)

	grp := api.Group("/audit-logs",
		featuresMiddleware.RequirePermission(constants.PermViewAuditLogs),
	)
	grp.Get("/", ctl.List)
}
