package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/schools/controller"
)

// Base path: /api/public/schools/:idOrSlug
func SchoolPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)
	site := controller.NewSiteSettingsController(db)

	api.Get("/schools/:idOrSlug", ctl.GetPublic)
	api.Get("/schools/:idOrSlug/theme", site.ThemePublic)
	api.Get("/schools/:idOrSlug/social-links", site.SocialLinksPublic)
}

// Base path: /api/a/school — the tenant manages its own profile, theme and
// social links.
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)
	site := controller.NewSiteSettingsController(db)

	grp := api.Group("/school")
	grp.Get("/", ctl.Mine)
	grp.Put("/", ctl.Update)
	grp.Get("/theme", site.GetTheme)
	grp.Put("/theme", site.UpdateTheme)
	grp.Get("/social-links", site.GetSocialLinks)
	grp.Put("/social-links", site.UpdateSocialLinks)
}

// Base path: /api/o/schools — platform owner provisions schools.
func SchoolOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	grp := api.Group("/schools")
	grp.Get("/", ctl.ListAll)
	grp.Post("/", ctl.Create)
}
