package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/subscriptions/controller"
)

// Base path: /api/public/plans
func PlanPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPlanController(db)
	api.Get("/plans", ctl.ListPublic)
}

// Base path: /api/a/subscription — tenant's view of its own plan usage.
func SubscriptionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubscriptionController(db)
	api.Get("/subscription", ctl.Mine)
}

// Base path: /api/o — platform owner manages plans and tenant subscriptions.
func SubscriptionOwnerRoutes(api fiber.Router, db *gorm.DB) {
	plans := controller.NewPlanController(db)
	subs := controller.NewSubscriptionController(db)

	pg := api.Group("/plans")
	pg.Get("/", plans.List)
	pg.Post("/", plans.Create)
	pg.Put("/:id", plans.Update)

	sg := api.Group("/subscriptions")
	sg.Get("/", subs.List)
	sg.Post("/", subs.Create)
	sg.Put("/:id", subs.Update)
}
