// file: internals/features/school/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academics/academic_years/dto"
	"schoolhub_backend/internals/features/school/academics/academic_years/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db, Validator: validator.New()}
}

func (ctl *AcademicYearController) tenant(c *fiber.Ctx) (orgID, schoolID uuid.UUID, err error) {
	sc, serr := helperAuth.GetScope(c)
	if serr != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No organization in scope")
	}
	orgID = sc.OrganizationID
	if sc.SchoolID != nil {
		return orgID, *sc.SchoolID, nil
	}
	schoolID, err = helper.SchoolIDForOrg(ctl.DB, orgID)
	return orgID, schoolID, err
}

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.AcademicYearModel
	if err := ctl.DB.
		Where("academic_year_organization_id = ? AND academic_year_school_id = ?", orgID, schoolID).
		Order("academic_year_start_date DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateAcademicYearRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.AcademicYearOrganizationID = orgID
	ent.AcademicYearSchoolID = schoolID

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.AcademicYearIsCurrent {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_school_id = ? AND academic_year_is_current = ?", schoolID, true).
				Update("academic_year_is_current", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&ent).Error
	})
	if txErr != nil {
		return helper.JsonWriteError(c, txErr, "academic_year_name")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "academic_year", ent.AcademicYearID)
	return helper.JsonCreated(c, "Academic year created", ent)
}

func (ctl *AcademicYearController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateAcademicYearRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.AcademicYearModel
		if err := tx.First(&ent,
			"academic_year_id = ? AND academic_year_organization_id = ? AND academic_year_school_id = ?",
			id, orgID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		if body.Name != nil {
			ent.AcademicYearName = *body.Name
		}
		if body.StartDate != nil {
			ent.AcademicYearStartDate = *body.StartDate
		}
		if body.EndDate != nil {
			ent.AcademicYearEndDate = *body.EndDate
		}
		if !ent.AcademicYearEndDate.After(ent.AcademicYearStartDate) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "End date must be after start date")
		}
		if body.IsCurrent != nil && *body.IsCurrent && !ent.AcademicYearIsCurrent {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_school_id = ? AND academic_year_is_current = ?", schoolID, true).
				Update("academic_year_is_current", false).Error; err != nil {
				return err
			}
			ent.AcademicYearIsCurrent = true
		} else if body.IsCurrent != nil {
			ent.AcademicYearIsCurrent = *body.IsCurrent
		}

		now := time.Now()
		ent.AcademicYearUpdatedAt = &now
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "academic_year_name")
		}
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "academic_year", id)
	return helper.JsonUpdated(c, "Academic year updated", nil)
}

func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Table("courses").
			Where("course_academic_year_id = ?", id).
			Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "Academic year has courses attached")
		}

		res := tx.Where(
			"academic_year_id = ? AND academic_year_organization_id = ? AND academic_year_school_id = ?",
			id, orgID, schoolID,
		).Delete(&model.AcademicYearModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "academic_year", id)
	return helper.JsonDeleted(c, "Academic year deleted", nil)
}
