// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/features/users/user/service"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

type userListRow struct {
	model.UserModel
	ProfileID             uuid.UUID  `gorm:"column:profile_id" json:"profile_id"`
	ProfileOrganizationID uuid.UUID  `gorm:"column:profile_organization_id" json:"profile_organization_id"`
	ProfileSchoolID       *uuid.UUID `gorm:"column:profile_school_id" json:"profile_school_id,omitempty"`
	ProfileRoleID         uuid.UUID  `gorm:"column:profile_role_id" json:"profile_role_id"`
	RoleSlug              string     `gorm:"column:role_slug" json:"role_slug"`
	ProfileIsActive       bool       `gorm:"column:profile_is_active" json:"profile_is_active"`
}

// List is org-scoped through the profile join; accounts without a profile
// in the caller's org simply do not exist here.
func (ctl *UserController) List(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Table("users u").
		Select(`u.*, p.profile_id, p.profile_organization_id, p.profile_school_id,
		        p.profile_role_id, p.profile_is_active, r.role_slug`).
		Joins("JOIN user_profiles p ON p.profile_user_id = u.id AND p.profile_deleted_at IS NULL").
		Joins("JOIN roles r ON r.role_id = p.profile_role_id").
		Where("u.deleted_at IS NULL").
		Where("p.profile_organization_id = ?", sc.OrganizationID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(u.user_name) LIKE ? OR LOWER(u.email) LIKE ? OR LOWER(u.first_name) LIKE ? OR LOWER(u.last_name) LIKE ?",
			like, like, like, like,
		)
	}
	if v := c.Query("role"); v != "" {
		dbq = dbq.Where("r.role_slug = ?", v)
	}
	if v := c.Query("school_id"); v != "" {
		schoolID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school_id")
		}
		dbq = dbq.Where("p.profile_school_id = ?", schoolID)
	}
	if v := c.Query("is_active"); v != "" {
		dbq = dbq.Where("u.is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []userListRow
	if err := dbq.
		Order("u.user_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for _, r := range rows {
		profile := model.UserProfileModel{
			ProfileID:             r.ProfileID,
			ProfileUserID:         r.ID,
			ProfileOrganizationID: r.ProfileOrganizationID,
			ProfileSchoolID:       r.ProfileSchoolID,
			ProfileRoleID:         r.ProfileRoleID,
			ProfileIsActive:       r.ProfileIsActive,
		}
		out = append(out, dto.FromUserModel(r.UserModel, &profile, r.RoleSlug))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

// Me serves any authenticated account, profile or not.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var profile model.UserProfileModel
	roleSlug := ""
	perr := ctl.DB.First(&profile, "profile_user_id = ?", userID).Error
	if perr == nil {
		var slugRow struct {
			RoleSlug string `gorm:"column:role_slug"`
		}
		_ = ctl.DB.Table("roles").
			Select("role_slug").
			Where("role_id = ?", profile.ProfileRoleID).
			Scan(&slugRow).Error
		roleSlug = slugRow.RoleSlug
		return helper.JsonOK(c, "", dto.FromUserModel(user, &profile, roleSlug))
	}
	return helper.JsonOK(c, "", dto.FromUserModel(user, nil, ""))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var profile model.UserProfileModel
	if err := ctl.DB.First(&profile,
		"profile_user_id = ? AND profile_organization_id = ?", id, sc.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", dto.FromUserModel(user, &profile, ""))
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	user, profile, cerr := service.CreateAccount(ctl.DB, sc.OrganizationID, body)
	if cerr != nil {
		if helper.IsUniqueViolation(cerr) {
			return helper.JsonConflict(c, "user_name / email")
		}
		return helper.FromFiberError(c, cerr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "user", user.ID)
	return helper.JsonCreated(c, "User created", dto.FromUserModel(user, &profile, ""))
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var profile model.UserProfileModel
		if err := tx.First(&profile,
			"profile_user_id = ? AND profile_organization_id = ?", id, sc.OrganizationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		var user model.UserModel
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if user.IsOwner {
			return fiber.NewError(fiber.StatusForbidden, "Platform owner accounts cannot be modified here")
		}

		if body.FirstName != nil {
			user.FirstName = strings.TrimSpace(*body.FirstName)
		}
		if body.LastName != nil {
			user.LastName = strings.TrimSpace(*body.LastName)
		}
		if body.IsActive != nil {
			user.IsActive = *body.IsActive
		}
		if body.IsStaff != nil {
			user.IsStaff = *body.IsStaff
		}
		user.UpdatedAt = time.Now()
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if body.RoleID != nil {
			profile.ProfileRoleID = *body.RoleID
		}
		if body.SchoolID != nil {
			profile.ProfileSchoolID = body.SchoolID
		}
		if body.Phone != nil {
			profile.ProfilePhone = strings.TrimSpace(*body.Phone)
		}
		if body.Gender != nil {
			profile.ProfileGender = *body.Gender
		}
		if body.Address != nil {
			profile.ProfileAddress = strings.TrimSpace(*body.Address)
		}
		if body.AvatarURL != nil {
			profile.ProfileAvatarURL = body.AvatarURL
		}
		if body.EmployeeNumber != nil {
			profile.ProfileEmployeeNumber = body.EmployeeNumber
		}
		if body.DateOfBirth != nil {
			profile.ProfileDateOfBirth = body.DateOfBirth
		}
		if body.ProfileActive != nil {
			profile.ProfileIsActive = *body.ProfileActive
		}
		return tx.Save(&profile).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "user", id)
	return helper.JsonUpdated(c, "User updated", nil)
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if id == sc.UserID {
		return helper.JsonError(c, fiber.StatusConflict, "Cannot remove your own account")
	}

	if err := service.DeactivateAccount(ctl.DB, sc.OrganizationID, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	auditService.Log(ctl.DB, c, auditService.ActionDeactivate, "user", id)
	return helper.JsonDeleted(c, "User removed", nil)
}

// ChangePassword handles both self-service and admin resets; the service
// decides which rules apply.
func (ctl *UserController) ChangePassword(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	targetID := sc.UserID
	if raw := c.Params("id"); raw != "" {
		parsed, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
		}
		targetID = parsed
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	if err := service.ChangePassword(ctl.DB, sc, targetID, body.CurrentPassword, body.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password updated", nil)
}
