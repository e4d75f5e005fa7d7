// file: internals/features/school/academics/classes/controller/class_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academics/classes/dto"
	"schoolhub_backend/internals/features/school/academics/classes/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validator: validator.New()}
}

func (ctl *ClassController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No organization in scope")
	}
	if sc.SchoolID != nil {
		return sc.OrganizationID, *sc.SchoolID, nil
	}
	schoolID, err := helper.SchoolIDForOrg(ctl.DB, sc.OrganizationID)
	return sc.OrganizationID, schoolID, err
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dbq := ctl.DB.
		Where("class_organization_id = ? AND class_school_id = ?", orgID, schoolID)
	if v := c.Query("grade"); v != "" {
		dbq = dbq.Where("class_grade = ?", v)
	}
	if v := c.Query("teacher_id"); v != "" {
		teacherID, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
		dbq = dbq.Where("class_teacher_id = ?", teacherID)
	}

	var rows []model.ClassModel
	if err := dbq.
		Order("class_grade ASC, class_section ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.ClassOrganizationID = orgID
	ent.ClassSchoolID = schoolID

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.ClassTeacherID != nil {
			if err := helper.EnsureOrgOwned(tx, "user_profiles", "profile_id", "profile_organization_id",
				*ent.ClassTeacherID, orgID); err != nil {
				return err
			}
		}
		return tx.Create(&ent).Error
	})
	if txErr != nil {
		return helper.JsonWriteError(c, txErr, "class_grade + class_section")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "class", ent.ClassID)
	return helper.JsonCreated(c, "Class created", ent)
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.ClassModel
		if err := tx.First(&ent,
			"class_id = ? AND class_organization_id = ? AND class_school_id = ?",
			id, orgID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		body.Apply(&ent)
		if ent.ClassTeacherID != nil {
			if err := helper.EnsureOrgOwned(tx, "user_profiles", "profile_id", "profile_organization_id",
				*ent.ClassTeacherID, orgID); err != nil {
				return err
			}
		}

		now := time.Now()
		ent.ClassUpdatedAt = &now
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "class_grade + class_section")
		}
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "class", id)
	return helper.JsonUpdated(c, "Class updated", nil)
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Enrolled students stay, they just lose the class assignment.
		if err := tx.Table("students").
			Where("student_class_id = ?", id).
			Update("student_class_id", nil).Error; err != nil {
			return err
		}

		res := tx.Where(
			"class_id = ? AND class_organization_id = ? AND class_school_id = ?",
			id, orgID, schoolID,
		).Delete(&model.ClassModel{})
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
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "class", id)
	return helper.JsonDeleted(c, "Class deleted", nil)
}
