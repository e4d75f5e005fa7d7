// file: internals/route/details/cms_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentRoute "schoolhub_backend/internals/features/cms/documents/route"
	galleryRoute "schoolhub_backend/internals/features/cms/galleries/route"
	navigationRoute "schoolhub_backend/internals/features/cms/navigations/route"
	pageRoute "schoolhub_backend/internals/features/cms/pages/route"
)

func CmsPublicRoutes(api fiber.Router, db *gorm.DB) {
	navigationRoute.NavigationPublicRoutes(api, db)
	galleryRoute.GalleryPublicRoutes(api, db)
	documentRoute.DocumentPublicRoutes(api, db)
	// pages last: its wildcard swallows /schools/:idOrSlug/pages/*
	pageRoute.PagePublicRoutes(api, db)
}

func CmsAdminRoutes(api fiber.Router, db *gorm.DB) {
	navigationRoute.NavigationAdminRoutes(api, db)
	pageRoute.PageAdminRoutes(api, db)
	galleryRoute.GalleryAdminRoutes(api, db)
	documentRoute.DocumentAdminRoutes(api, db)
}
