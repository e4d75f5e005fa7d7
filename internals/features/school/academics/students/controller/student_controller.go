// file: internals/features/school/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subsService "schoolhub_backend/internals/features/tenants/subscriptions/service"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	"schoolhub_backend/internals/features/school/academics/students/dto"
	"schoolhub_backend/internals/features/school/academics/students/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

func (ctl *StudentController) tenant(c *fiber.Ctx) (helperAuth.Scope, uuid.UUID, error) {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return sc, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return sc, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No organization in scope")
	}
	if sc.SchoolID != nil {
		return sc, *sc.SchoolID, nil
	}
	schoolID, err := helper.SchoolIDForOrg(ctl.DB, sc.OrganizationID)
	return sc, schoolID, err
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	sc, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.StudentModel{}).
		Where("student_organization_id = ? AND student_school_id = ?", sc.OrganizationID, schoolID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_admission_number) LIKE ?",
			like, like, like,
		)
	}
	if v := c.Query("class_id"); v != "" {
		classID, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		dbq = dbq.Where("student_class_id = ?", classID)
	}
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("student_status = ?", v)
	}
	if v := c.Query("gender"); v != "" {
		dbq = dbq.Where("student_gender = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.StudentModel
	if err := dbq.
		Order("student_first_name ASC, student_last_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	sc, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.StudentModel
	if err := ctl.DB.First(&ent,
		"student_id = ? AND student_organization_id = ? AND student_school_id = ?",
		id, sc.OrganizationID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

// Create admits a student. Quota check, insert and counter bump share one
// transaction so a full plan can never oversell seats.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	sc, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.StudentOrganizationID = sc.OrganizationID
	ent.StudentSchoolID = schoolID

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := subsService.CheckStudentLimit(tx, sc.OrganizationID); err != nil {
			return err
		}
		if ent.StudentClassID != nil {
			if err := helper.EnsureSchoolOwned(tx, "classes", "class_id",
				"class_organization_id", "class_school_id",
				*ent.StudentClassID, sc.OrganizationID, schoolID); err != nil {
				return err
			}
		}
		if err := tx.Create(&ent).Error; err != nil {
			return err
		}
		return subsService.IncrementStudentCount(tx, sc.OrganizationID)
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "student_admission_number")
		}
		return helper.FromFiberError(c, txErr)
	}

	_ = auditService.LogAction(ctl.DB, c, sc, auditService.ActionCreate, "student", ent.StudentID, nil)
	return helper.JsonCreated(c, "Student admitted", ent)
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	sc, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.StudentModel
		if err := tx.First(&ent,
			"student_id = ? AND student_organization_id = ? AND student_school_id = ?",
			id, sc.OrganizationID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		body.Apply(&ent)
		if body.ClassID != nil {
			if err := helper.EnsureSchoolOwned(tx, "classes", "class_id",
				"class_organization_id", "class_school_id",
				*body.ClassID, sc.OrganizationID, schoolID); err != nil {
				return err
			}
		}

		now := time.Now()
		ent.StudentUpdatedAt = &now
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	_ = auditService.LogAction(ctl.DB, c, sc, auditService.ActionUpdate, "student", id, nil)
	return helper.JsonUpdated(c, "Student updated", nil)
}

// Delete soft-removes the student and releases the plan seat.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	sc, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(
			"student_id = ? AND student_organization_id = ? AND student_school_id = ?",
			id, sc.OrganizationID, schoolID,
		).Delete(&model.StudentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return subsService.DecrementStudentCount(tx, sc.OrganizationID)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	_ = auditService.LogAction(ctl.DB, c, sc, auditService.ActionDelete, "student", id, nil)
	return helper.JsonDeleted(c, "Student removed", nil)
}
