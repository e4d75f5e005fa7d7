// file: internals/features/cms/pages/controller/page_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/pages/dto"
	"schoolhub_backend/internals/features/cms/pages/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type PageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db, Validator: validator.New()}
}

func (ctl *PageController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

// GetPublic fetches a published page by its slug path, wildcard so nested
// slugs like about/history work. Unpublished pages are 404 to the public.
func (ctl *PageController) GetPublic(c *fiber.Ctx) error {
	schoolRef := c.Params("idOrSlug")
	pagePath := c.Params("*")
	if pagePath == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing page path")
	}

	id, slug := helper.ParseIDOrSlug(schoolRef)
	var school struct {
		SchoolID uuid.UUID `gorm:"column:school_id"`
	}
	dbq := ctl.DB.Table("schools").Select("school_id").Where("school_is_active = ?", true)
	if slug != "" {
		dbq = dbq.Where("school_slug = ?", slug)
	} else {
		dbq = dbq.Where("school_id = ?", id)
	}
	if err := dbq.Scan(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	if school.SchoolID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	var ent model.PageModel
	if err := ctl.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Where("section_is_visible = ?", true).
				Order("section_display_order ASC, section_created_at ASC")
		}).
		First(&ent,
			"page_school_id = ? AND page_slug = ? AND page_is_published = ?",
			school.SchoolID, pagePath, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *PageController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 100)

	dbq := ctl.DB.Model(&model.PageModel{}).Where("page_school_id = ?", schoolID)
	if v := c.Query("is_published"); v != "" {
		dbq = dbq.Where("page_is_published = ?", v == "true" || v == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.PageModel
	if err := dbq.
		Order("page_title ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *PageController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreatePageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.PageOrganizationID = orgID
	ent.PageSchoolID = schoolID
	if ent.PageSlug == "" {
		// Auto-generated slugs dodge the unique index instead of 409ing.
		slug, err := helper.EnsureUniqueSlug(ctl.DB, "pages", "page_slug",
			helper.GenerateSlug(ent.PageTitle), func(q *gorm.DB) *gorm.DB {
				return q.Where("page_organization_id = ? AND page_school_id = ?", orgID, schoolID)
			})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
		}
		ent.PageSlug = slug
	}
	if ent.PageIsPublished {
		now := time.Now()
		ent.PagePublishedAt = &now
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "page_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "page", ent.PageID)
	return helper.JsonCreated(c, "Page created", ent)
}

func (ctl *PageController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdatePageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.PageModel
	if err := ctl.DB.First(&ent,
		"page_id = ? AND page_organization_id = ? AND page_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Title != nil {
		ent.PageTitle = *body.Title
	}
	if body.Content != nil {
		ent.PageContent = *body.Content
	}
	if body.MetaTitle != nil {
		ent.PageMetaTitle = *body.MetaTitle
	}
	if body.MetaDescription != nil {
		ent.PageMetaDescription = *body.MetaDescription
	}
	if body.IsPublished != nil {
		if *body.IsPublished && !ent.PageIsPublished {
			now := time.Now()
			ent.PagePublishedAt = &now
		}
		ent.PageIsPublished = *body.IsPublished
	}

	now := time.Now()
	ent.PageUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "page_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "page", ent.PageID)
	return helper.JsonUpdated(c, "Page updated", ent)
}

func (ctl *PageController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_page_id = ?", id).Delete(&model.PageSectionModel{}).Error; err != nil {
			return err
		}
		res := tx.Where(
			"page_id = ? AND page_organization_id = ? AND page_school_id = ?",
			id, orgID, schoolID,
		).Delete(&model.PageModel{})
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
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "page", id)
	return helper.JsonDeleted(c, "Page deleted", nil)
}

/* ----------------------------- sections ------------------------------- */

// sectionSlug falls back to the title, then the block type, so a slug always
// exists for the per-page uniqueness constraint.
func sectionSlug(ent model.PageSectionModel) string {
	if ent.SectionSlug != "" {
		return ent.SectionSlug
	}
	if s := helper.GenerateSlug(ent.SectionTitle); s != "" {
		return s
	}
	return ent.SectionType
}

func (ctl *PageController) AddSection(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	pageID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.CreateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	if err := helper.EnsureSchoolOwned(ctl.DB, "pages", "page_id",
		"page_organization_id", "page_school_id", pageID, orgID, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := body.ToModel()
	ent.SectionOrganizationID = orgID
	ent.SectionSchoolID = schoolID
	ent.SectionPageID = &pageID
	ent.SectionSlug = sectionSlug(ent)

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "section_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "page_section", ent.SectionID)
	return helper.JsonCreated(c, "Section added", ent)
}

func (ctl *PageController) DeleteSection(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	pageID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	sectionID, perr := uuid.Parse(c.Params("sectionId"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}

	if err := helper.EnsureSchoolOwned(ctl.DB, "pages", "page_id",
		"page_organization_id", "page_school_id", pageID, orgID, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("section_id = ? AND section_page_id = ?", sectionID, pageID).
		Delete(&model.PageSectionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "page_section", sectionID)
	return helper.JsonDeleted(c, "Section deleted", nil)
}

/* ------------------------- global sections ----------------------------- */
// Sections without a page are reusable blocks (shared headers, footers,
// banners) that themes pull in by slug.

func (ctl *PageController) ListGlobalSections(c *fiber.Ctx) error {
	_, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var rows []model.PageSectionModel
	if err := ctl.DB.
		Where("section_school_id = ? AND section_page_id IS NULL", schoolID).
		Order("section_display_order ASC, section_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *PageController) CreateGlobalSection(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.SectionOrganizationID = orgID
	ent.SectionSchoolID = schoolID
	ent.SectionSlug = sectionSlug(ent)

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "section_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "page_section", ent.SectionID)
	return helper.JsonCreated(c, "Section created", ent)
}

func (ctl *PageController) UpdateSection(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("sectionId"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}

	var body dto.UpdateSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.PageSectionModel
	if err := ctl.DB.First(&ent,
		"section_id = ? AND section_organization_id = ? AND section_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Type != nil {
		ent.SectionType = *body.Type
	}
	if body.Title != nil {
		ent.SectionTitle = *body.Title
	}
	if len(body.Content) > 0 {
		ent.SectionContent = body.Content
	}
	if body.DisplayOrder != nil {
		ent.SectionDisplayOrder = *body.DisplayOrder
	}
	if body.IsVisible != nil {
		ent.SectionIsVisible = *body.IsVisible
	}
	now := time.Now()
	ent.SectionUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "section_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "page_section", ent.SectionID)
	return helper.JsonUpdated(c, "Section updated", ent)
}

func (ctl *PageController) DeleteGlobalSection(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("sectionId"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}

	res := ctl.DB.Where(
		"section_id = ? AND section_organization_id = ? AND section_school_id = ? AND section_page_id IS NULL",
		id, orgID, schoolID,
	).Delete(&model.PageSectionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "page_section", id)
	return helper.JsonDeleted(c, "Section deleted", nil)
}
