// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/dto"
	"schoolhub_backend/internals/features/users/auth/service"
	userDTO "schoolhub_backend/internals/features/users/user/dto"
	helper "schoolhub_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	user, pair, err := service.Register(ctl.DB, body.UserName, body.Email, body.Password, body.FirstName, body.LastName)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonConflict(c, "user_name, email")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Account created", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDTO.FromUserModel(user, nil, ""),
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	user, pair, err := service.Login(ctl.DB, body.Identifier, body.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDTO.FromUserModel(user, nil, ""),
	})
}

func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	user, pair, err := service.LoginWithGoogle(ctl.DB, body.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userDTO.FromUserModel(user, nil, ""),
	})
}

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	pair, err := service.Refresh(ctl.DB, body.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Token refreshed", pair)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	var body dto.LogoutRequest
	_ = c.BodyParser(&body)

	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.Logout(ctl.DB, raw, body.RefreshToken); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logged out", nil)
}
