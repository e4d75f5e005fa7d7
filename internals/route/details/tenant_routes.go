// file: internals/route/details/tenant_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoute "schoolhub_backend/internals/features/tenants/audit/route"
	billingRoute "schoolhub_backend/internals/features/tenants/billing/route"
	orgRoute "schoolhub_backend/internals/features/tenants/organizations/route"
	subsRoute "schoolhub_backend/internals/features/tenants/subscriptions/route"
)

func TenantPublicRoutes(api fiber.Router, db *gorm.DB) {
	subsRoute.PlanPublicRoutes(api, db)
}

func TenantAdminRoutes(api fiber.Router, db *gorm.DB) {
	subsRoute.SubscriptionAdminRoutes(api, db)
	billingRoute.BillingAdminRoutes(api, db)
	auditRoute.AuditLogAdminRoutes(api, db)
}

func TenantOwnerRoutes(api fiber.Router, db *gorm.DB) {
	orgRoute.OrganizationOwnerRoutes(api, db)
	subsRoute.SubscriptionOwnerRoutes(api, db)
	billingRoute.BillingOwnerRoutes(api, db)
}
