package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/cms/galleries/controller"
	featuresMiddleware "schoolhub_backend/internals/middlewares/features"
)

// Base path: /api/public/schools/:idOrSlug/galleries
func GalleryPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGalleryController(db)
	api.Get("/schools/:idOrSlug/galleries", ctl.ListPublic)
	api.Get("/schools/:idOrSlug/galleries/:gallerySlug", ctl.GetPublic)
}

// Base path: /api/a/galleries
func GalleryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGalleryController(db)

	grp := api.Group("/galleries",
		featuresMiddleware.RequirePermission(constants.PermManageMedia),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/images", ctl.AddImage)
	grp.Delete("/:id/images/:imageId", ctl.DeleteImage)
}
