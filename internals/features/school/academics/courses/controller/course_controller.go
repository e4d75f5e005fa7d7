// file: internals/features/school/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academics/courses/dto"
	"schoolhub_backend/internals/features/school/academics/courses/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validator: validator.New()}
}

func (ctl *CourseController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

func (ctl *CourseController) List(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dbq := ctl.DB.
		Where("course_organization_id = ? AND course_school_id = ?", orgID, schoolID)
	if v := c.Query("class_id"); v != "" {
		id, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		dbq = dbq.Where("course_class_id = ?", id)
	}
	if v := c.Query("academic_year_id"); v != "" {
		id, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid academic_year_id")
		}
		dbq = dbq.Where("course_academic_year_id = ?", id)
	}
	if v := c.Query("teacher_id"); v != "" {
		id, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
		dbq = dbq.Where("course_teacher_id = ?", id)
	}

	var rows []model.CourseModel
	if err := dbq.Order("course_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

// Create verifies every FK against the caller's tenant before insert; a
// class or subject from another school reads as not-found.
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.CourseOrganizationID = orgID
	ent.CourseSchoolID = schoolID

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := helper.EnsureSchoolOwned(tx, "classes", "class_id",
			"class_organization_id", "class_school_id",
			ent.CourseClassID, orgID, schoolID); err != nil {
			return err
		}
		if err := helper.EnsureSchoolOwned(tx, "subjects", "subject_id",
			"subject_organization_id", "subject_school_id",
			ent.CourseSubjectID, orgID, schoolID); err != nil {
			return err
		}
		if err := helper.EnsureSchoolOwned(tx, "academic_years", "academic_year_id",
			"academic_year_organization_id", "academic_year_school_id",
			ent.CourseAcademicYearID, orgID, schoolID); err != nil {
			return err
		}
		if ent.CourseTeacherID != nil {
			if err := helper.EnsureOrgOwned(tx, "user_profiles", "profile_id", "profile_organization_id",
				*ent.CourseTeacherID, orgID); err != nil {
				return err
			}
		}
		return tx.Create(&ent).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "class + subject + academic year")
		}
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "course", ent.CourseID)
	return helper.JsonCreated(c, "Course created", ent)
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.CourseModel
		if err := tx.First(&ent,
			"course_id = ? AND course_organization_id = ? AND course_school_id = ?",
			id, orgID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		if body.TeacherID != nil {
			if err := helper.EnsureOrgOwned(tx, "user_profiles", "profile_id", "profile_organization_id",
				*body.TeacherID, orgID); err != nil {
				return err
			}
			ent.CourseTeacherID = body.TeacherID
		}
		if body.HoursPerWeek != nil {
			ent.CourseHoursPerWeek = *body.HoursPerWeek
		}
		if body.Syllabus != nil {
			ent.CourseSyllabus = *body.Syllabus
		}

		now := time.Now()
		ent.CourseUpdatedAt = &now
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "course", id)
	return helper.JsonUpdated(c, "Course updated", nil)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where(
		"course_id = ? AND course_organization_id = ? AND course_school_id = ?",
		id, orgID, schoolID,
	).Delete(&model.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "course", id)
	return helper.JsonDeleted(c, "Course deleted", nil)
}
