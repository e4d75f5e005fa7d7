// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/schools/dto"
	"schoolhub_backend/internals/features/school/schools/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validator: validator.New()}
}

// GetPublic serves the public school profile by slug or id. Inactive
// schools are invisible here.
func (ctl *SchoolController) GetPublic(c *fiber.Ctx) error {
	id, slug := helper.ParseIDOrSlug(c.Params("idOrSlug"))

	dbq := ctl.DB.Where("school_is_active = ?", true)
	if slug != "" {
		dbq = dbq.Where("school_slug = ?", slug)
	} else {
		dbq = dbq.Where("school_id = ?", id)
	}

	var ent model.SchoolModel
	if err := dbq.First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

// Mine returns the caller's school, resolved from scope.
func (ctl *SchoolController) Mine(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	var ent model.SchoolModel
	if err := ctl.DB.First(&ent, "school_organization_id = ?", sc.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	var body dto.UpdateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.SchoolModel
	if err := ctl.DB.First(&ent, "school_organization_id = ?", sc.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	before := schoolSnapshot(&ent)
	body.Apply(&ent)
	now := time.Now()
	ent.SchoolUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "school_slug")
	}
	auditService.LogUpdate(ctl.DB, c, "school", ent.SchoolID, before, schoolSnapshot(&ent))
	return helper.JsonUpdated(c, "School updated", ent)
}

// schoolSnapshot is the flat column view diffed into audit rows on update.
func schoolSnapshot(ent *model.SchoolModel) map[string]any {
	return map[string]any{
		"school_name":           ent.SchoolName,
		"school_motto":          ent.SchoolMotto,
		"school_email":          ent.SchoolEmail,
		"school_phone":          ent.SchoolPhone,
		"school_address":        ent.SchoolAddress,
		"school_city":           ent.SchoolCity,
		"school_state":          ent.SchoolState,
		"school_postal_code":    ent.SchoolPostalCode,
		"school_principal_name": ent.SchoolPrincipalName,
		"school_is_active":      ent.SchoolIsActive,
	}
}

/* ------------------------- owner side (/api/o) ------------------------- */

func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var body dto.CreateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	if ent.SchoolSlug == "" {
		// School slugs are globally unique (public URLs), so a generated
		// one walks to the next free suffix instead of colliding.
		slug, err := helper.EnsureUniqueSlug(ctl.DB, "schools", "school_slug",
			helper.GenerateSlug(ent.SchoolName), nil)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
		}
		ent.SchoolSlug = slug
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "school_slug / school_organization_id")
	}
	return helper.JsonCreated(c, "School created", ent)
}

func (ctl *SchoolController) ListAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.SchoolModel{})
	if v := c.Query("is_active"); v != "" {
		dbq = dbq.Where("school_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.SchoolModel
	if err := dbq.
		Order("school_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}
