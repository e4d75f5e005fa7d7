// file: internals/features/school/academics/parents/controller/parent_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academics/parents/dto"
	"schoolhub_backend/internals/features/school/academics/parents/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validator: validator.New()}
}

func (ctl *ParentController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

func (ctl *ParentController) List(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.ParentModel{}).
		Where("parent_organization_id = ? AND parent_school_id = ?", orgID, schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbq = dbq.Where(
			"LOWER(parent_first_name) LIKE ? OR LOWER(parent_last_name) LIKE ? OR parent_phone LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.ParentModel
	if err := dbq.
		Order("parent_first_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *ParentController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateParentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.ParentOrganizationID = orgID
	ent.ParentSchoolID = schoolID

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Insert failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "parent", ent.ParentID)
	return helper.JsonCreated(c, "Parent created", ent)
}

func (ctl *ParentController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateParentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.ParentModel
	if err := ctl.DB.First(&ent,
		"parent_id = ? AND parent_organization_id = ? AND parent_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	before := parentSnapshot(&ent)
	body.Apply(&ent)
	now := time.Now()
	ent.ParentUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.LogUpdate(ctl.DB, c, "parent", ent.ParentID, before, parentSnapshot(&ent))
	return helper.JsonUpdated(c, "Parent updated", ent)
}

func parentSnapshot(ent *model.ParentModel) map[string]any {
	return map[string]any{
		"parent_first_name": ent.ParentFirstName,
		"parent_last_name":  ent.ParentLastName,
		"parent_relation":   ent.ParentRelation,
		"parent_phone":      ent.ParentPhone,
		"parent_occupation": ent.ParentOccupation,
		"parent_address":    ent.ParentAddress,
	}
}

// LinkStudent ties a parent to a student. Both rows must belong to the
// caller's school; the unique pair index rejects duplicate links. A
// student may carry several primary contacts.
func (ctl *ParentController) LinkStudent(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	parentID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.LinkStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var link model.StudentParentModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := helper.EnsureSchoolOwned(tx, "parents", "parent_id",
			"parent_organization_id", "parent_school_id",
			parentID, orgID, schoolID); err != nil {
			return err
		}
		if err := helper.EnsureSchoolOwned(tx, "students", "student_id",
			"student_organization_id", "student_school_id",
			body.StudentID, orgID, schoolID); err != nil {
			return err
		}

		link = model.StudentParentModel{
			StudentParentOrganizationID: orgID,
			StudentParentStudentID:      body.StudentID,
			StudentParentParentID:       parentID,
			StudentParentIsPrimary:      body.IsPrimary,
		}
		return tx.Create(&link).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "student + parent")
		}
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "student_parent", link.StudentParentID)
	return helper.JsonCreated(c, "Student linked", link)
}

// Delete drops the parent and every student link it holds in one
// transaction.
func (ctl *ParentController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"student_parent_parent_id = ? AND student_parent_organization_id = ?",
			id, orgID,
		).Delete(&model.StudentParentModel{}).Error; err != nil {
			return err
		}
		res := tx.Where(
			"parent_id = ? AND parent_organization_id = ? AND parent_school_id = ?",
			id, orgID, schoolID,
		).Delete(&model.ParentModel{})
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
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "parent", id)
	return helper.JsonDeleted(c, "Parent deleted", nil)
}

func (ctl *ParentController) UnlinkStudent(c *fiber.Ctx) error {
	orgID, _, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	parentID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	studentID, perr := uuid.Parse(c.Params("studentId"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.Where(
		"student_parent_organization_id = ? AND student_parent_parent_id = ? AND student_parent_student_id = ?",
		orgID, parentID, studentID,
	).Delete(&model.StudentParentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "student_parent", studentID)
	return helper.JsonDeleted(c, "Student unlinked", nil)
}

// StudentsOf lists the students linked to one parent.
func (ctl *ParentController) StudentsOf(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	parentID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := helper.EnsureSchoolOwned(ctl.DB, "parents", "parent_id",
		"parent_organization_id", "parent_school_id",
		parentID, orgID, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []map[string]any
	if err := ctl.DB.Table("student_parents sp").
		Select("s.student_id, s.student_admission_number, s.student_first_name, s.student_last_name, s.student_status, sp.student_parent_is_primary").
		Joins("JOIN students s ON s.student_id = sp.student_parent_student_id AND s.student_deleted_at IS NULL").
		Where("sp.student_parent_parent_id = ? AND sp.student_parent_organization_id = ?", parentID, orgID).
		Order("s.student_first_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}
