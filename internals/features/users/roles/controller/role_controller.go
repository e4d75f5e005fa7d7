// file: internals/features/users/roles/controller/role_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/roles/dto"
	"schoolhub_backend/internals/features/users/roles/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type RoleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db, Validator: validator.New()}
}

func (ctl *RoleController) scopeOrg(c *fiber.Ctx) (uuid.UUID, error) {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}
	return sc.OrganizationID, nil
}

func (ctl *RoleController) List(c *fiber.Ctx) error {
	orgID, err := ctl.scopeOrg(c)
	if err != nil {
		return err
	}

	var rows []model.RoleModel
	if err := ctl.DB.
		Where("role_organization_id = ?", orgID).
		Order("role_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *RoleController) Create(c *fiber.Ctx) error {
	orgID, err := ctl.scopeOrg(c)
	if err != nil {
		return err
	}

	var body dto.CreateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.RoleOrganizationID = orgID
	if ent.RoleSlug == "" {
		ent.RoleSlug = helper.GenerateSlug(ent.RoleName)
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "role_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "role", ent.RoleID)
	return helper.JsonCreated(c, "Role created", ent)
}

func (ctl *RoleController) Update(c *fiber.Ctx) error {
	orgID, err := ctl.scopeOrg(c)
	if err != nil {
		return err
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.RoleModel
	if err := ctl.DB.
		First(&ent, "role_id = ? AND role_organization_id = ?", id, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	if ent.RoleIsSystem {
		return helper.JsonError(c, fiber.StatusConflict, "System roles cannot be modified")
	}

	body.Apply(&ent)
	now := time.Now()
	ent.RoleUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "role_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "role", ent.RoleID)
	return helper.JsonUpdated(c, "Role updated", ent)
}

// Delete refuses while any profile still references the role. The check and
// the delete share a transaction so a racing assignment cannot orphan a
// profile.
func (ctl *RoleController) Delete(c *fiber.Ctx) error {
	orgID, err := ctl.scopeOrg(c)
	if err != nil {
		return err
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.RoleModel
		if err := tx.
			First(&ent, "role_id = ? AND role_organization_id = ?", id, orgID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}
		if ent.RoleIsSystem {
			return fiber.NewError(fiber.StatusConflict, "System roles cannot be deleted")
		}

		var inUse int64
		if err := tx.Table("user_profiles").
			Where("profile_role_id = ? AND profile_deleted_at IS NULL", id).
			Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "Role is still assigned to users")
		}

		return tx.Delete(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "role", id)
	return helper.JsonDeleted(c, "Role deleted", nil)
}
