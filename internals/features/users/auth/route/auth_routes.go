package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/features/users/auth/service"
	"schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

// Base path: /api/auth — login endpoints carry their own rate limiters.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	grp := api.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	grp.Post("/refresh-token", ctl.Refresh)

	grp.Post("/logout",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:           configs.JWTSecret,
			BlacklistChecker: service.IsTokenBlacklisted(db),
		}),
		ctl.Logout,
	)
}
