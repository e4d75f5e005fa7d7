// file: internals/features/tenants/organizations/controller/organization_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/organizations/dto"
	"schoolhub_backend/internals/features/tenants/organizations/model"
	helper "schoolhub_backend/internals/helpers"
)

// Organization CRUD is platform-owner territory (/api/o); tenants themselves
// never mutate their root row directly.
type OrganizationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db, Validator: validator.New()}
}

func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	var body dto.CreateOrganizationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	if ent.OrganizationSlug == "" {
		ent.OrganizationSlug = helper.GenerateSlug(ent.OrganizationName)
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "organization_slug / organization_domain")
	}
	return helper.JsonCreated(c, "Organization created", dto.FromOrganizationModel(ent))
}

func (ctl *OrganizationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.OrganizationModel
	if err := ctl.DB.First(&ent, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", dto.FromOrganizationModel(ent))
}

func (ctl *OrganizationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.OrganizationModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(organization_name) LIKE ? OR LOWER(organization_slug) LIKE ? OR LOWER(organization_email) LIKE ?",
			like, like, like,
		)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		dbq = dbq.Where("organization_is_active = ?", parseBool(v))
	}
	if v := strings.TrimSpace(c.Query("is_verified")); v != "" {
		dbq = dbq.Where("organization_is_verified = ?", parseBool(v))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.OrganizationModel
	if err := dbq.
		Order("organization_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	return helper.JsonList(c, "", dto.FromOrganizationModels(rows), helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateOrganizationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.OrganizationModel
	if err := ctl.DB.First(&ent, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	body.Apply(&ent)
	now := time.Now()
	ent.OrganizationUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "organization_slug / organization_domain")
	}
	return helper.JsonUpdated(c, "Organization updated", dto.FromOrganizationModel(ent))
}

// Deactivate soft-disables the tenant. Hard delete is blocked at the schema
// level while a subscription or school still references it.
func (ctl *OrganizationController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Model(&model.OrganizationModel{}).
		Where("organization_id = ?", id).
		Updates(map[string]any{
			"organization_is_active":  false,
			"organization_updated_at": time.Now(),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonUpdated(c, "Organization deactivated", nil)
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}
