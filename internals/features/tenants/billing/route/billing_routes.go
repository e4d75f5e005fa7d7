package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/tenants/billing/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/a/invoices — tenant views and pays its own invoices.
func BillingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceController(db)

	grp := api.Group("/invoices",
		featuresMiddleware.RequirePermission(constants.PermManageBilling),
	)
	grp.Get("/", ctl.ListMine)
	grp.Post("/:id/pay", ctl.Pay)
}

// Base path: /api/o/invoices — platform owner issues and settles invoices.
func BillingOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceController(db)

	grp := api.Group("/invoices")
	grp.Get("/", ctl.ListAll)
	grp.Post("/", ctl.Create)
	grp.Post("/:id/mark-paid", ctl.MarkPaid)
}
