package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/organizations/controller"
)

// Base path: /api/o/organizations (owner group already carries auth + guard)
func OrganizationOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	grp := api.Group("/organizations")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Deactivate)
}
