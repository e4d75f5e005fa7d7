// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schoolhub_backend/internals/features/users/auth/route"
	roleRoute "schoolhub_backend/internals/features/users/roles/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
)

// AuthRoutes mounts login/refresh/logout under /api.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
}

// UserSelfRoutes mounts /users/me and self password change under /api/u.
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserSelfRoutes(api, db)
}

// UserAdminRoutes mounts account and role management under /api/a.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
	roleRoute.RoleAdminRoutes(api, db)
}
