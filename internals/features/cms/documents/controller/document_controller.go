// file: internals/features/cms/documents/controller/document_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/documents/dto"
	"schoolhub_backend/internals/features/cms/documents/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type DocumentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db, Validator: validator.New()}
}

func (ctl *DocumentController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

func resolveSchool(db *gorm.DB, ref string) (uuid.UUID, error) {
	id, slug := helper.ParseIDOrSlug(ref)
	var row struct {
		SchoolID uuid.UUID `gorm:"column:school_id"`
	}
	q := db.Table("schools").Select("school_id").Where("school_is_active = ?", true)
	if slug != "" {
		q = q.Where("school_slug = ?", slug)
	} else {
		q = q.Where("school_id = ?", id)
	}
	if err := q.Scan(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Query failed")
	}
	if row.SchoolID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Record not found")
	}
	return row.SchoolID, nil
}

// ListPublic lists downloadable public documents, optionally by ?category=.
func (ctl *DocumentController) ListPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.
		Where("document_school_id = ? AND document_is_public = ?", schoolID, true)
	if cat := strings.TrimSpace(strings.ToLower(c.Query("category"))); cat != "" {
		q = q.Where("document_category = ?", cat)
	}

	var rows []model.DocumentModel
	if err := q.Order("document_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

// Download returns the file URL and bumps the counter atomically. The handler
// never proxies the file body; clients follow document_file_url themselves.
func (ctl *DocumentController) Download(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	docID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.DocumentModel
	if err := ctl.DB.First(&ent,
		"document_id = ? AND document_school_id = ? AND document_is_public = ?",
		docID, schoolID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if err := ctl.DB.Model(&model.DocumentModel{}).
		Where("document_id = ?", ent.DocumentID).
		UpdateColumn("document_download_count", gorm.Expr("document_download_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	ent.DocumentDownloadCount++

	return helper.JsonOK(c, "", fiber.Map{
		"document_id":        ent.DocumentID,
		"document_file_url":  ent.DocumentFileURL,
		"document_file_name": ent.DocumentFileName,
		"document_mime_type": ent.DocumentMimeType,
	})
}

func (ctl *DocumentController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.DocumentModel{}).Where("document_school_id = ?", schoolID)
	if cat := strings.TrimSpace(strings.ToLower(c.Query("category"))); cat != "" {
		q = q.Where("document_category = ?", cat)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("document_title ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.DocumentModel
	if err := q.Order("document_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *DocumentController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateDocumentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.DocumentOrganizationID = orgID
	ent.DocumentSchoolID = schoolID

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Insert failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "document", ent.DocumentID)
	return helper.JsonCreated(c, "Document created", ent)
}

func (ctl *DocumentController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateDocumentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.DocumentModel
	if err := ctl.DB.First(&ent,
		"document_id = ? AND document_organization_id = ? AND document_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Title != nil {
		ent.DocumentTitle = *body.Title
	}
	if body.Description != nil {
		ent.DocumentDescription = *body.Description
	}
	if body.Category != nil {
		ent.DocumentCategory = strings.ToLower(strings.TrimSpace(*body.Category))
	}
	if body.IsPublic != nil {
		ent.DocumentIsPublic = *body.IsPublic
	}

	now := time.Now()
	ent.DocumentUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "document", ent.DocumentID)
	return helper.JsonUpdated(c, "Document updated", ent)
}

func (ctl *DocumentController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where(
		"document_id = ? AND document_organization_id = ? AND document_school_id = ?",
		id, orgID, schoolID,
	).Delete(&model.DocumentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "document", id)
	return helper.JsonDeleted(c, "Document deleted", nil)
}
