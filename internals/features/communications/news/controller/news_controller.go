// file: internals/features/communications/news/controller/news_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/news/dto"
	"schoolhub_backend/internals/features/communications/news/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type NewsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db, Validator: validator.New()}
}

func (ctl *NewsController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

// ListPublic lists published news, featured first, newest editorial date first.
func (ctl *NewsController) ListPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 10, 50)
	q := ctl.DB.Model(&model.NewsModel{}).
		Where("news_school_id = ? AND news_is_published = ?", schoolID, true)
	if c.Query("featured") == "true" {
		q = q.Where("news_is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.NewsModel
	if err := q.
		Order("news_is_featured DESC, news_published_date DESC NULLS LAST, news_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// GetPublic returns one published article and bumps its view counter.
func (ctl *NewsController) GetPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.NewsModel
	if err := ctl.DB.First(&ent,
		"news_school_id = ? AND news_slug = ? AND news_is_published = ?",
		schoolID, c.Params("newsSlug"), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if err := ctl.DB.Model(&model.NewsModel{}).
		Where("news_id = ?", ent.NewsID).
		UpdateColumn("news_views_count", gorm.Expr("news_views_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	ent.NewsViewsCount++

	return helper.JsonOK(c, "", ent)
}

func (ctl *NewsController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.NewsModel{}).Where("news_school_id = ?", schoolID)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("news_title ILIKE ?", "%"+s+"%")
	}
	if c.Query("is_published") != "" {
		q = q.Where("news_is_published = ?", c.Query("is_published") == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.NewsModel
	if err := q.Order("news_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *NewsController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.NewsOrganizationID = orgID
	ent.NewsSchoolID = schoolID
	if ent.NewsSlug == "" {
		ent.NewsSlug = helper.GenerateSlug(ent.NewsTitle)
	}
	if ent.NewsIsPublished && ent.NewsPublishedDate == nil {
		now := time.Now()
		ent.NewsPublishedDate = &now
	}
	if sc, err := helperAuth.GetScope(c); err == nil && sc.ProfileID != uuid.Nil {
		pid := sc.ProfileID
		ent.NewsAuthorID = &pid
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "news_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "news", ent.NewsID)
	return helper.JsonCreated(c, "News created", ent)
}

func (ctl *NewsController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.NewsModel
	if err := ctl.DB.First(&ent,
		"news_id = ? AND news_organization_id = ? AND news_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Title != nil {
		ent.NewsTitle = *body.Title
	}
	if body.Summary != nil {
		ent.NewsSummary = *body.Summary
	}
	if body.Content != nil {
		ent.NewsContent = *body.Content
	}
	if body.CoverURL != nil {
		ent.NewsCoverURL = body.CoverURL
	}
	if body.IsFeatured != nil {
		ent.NewsIsFeatured = *body.IsFeatured
	}
	if body.PublishedDate != nil {
		ent.NewsPublishedDate = body.PublishedDate
	}
	if body.IsPublished != nil {
		ent.NewsIsPublished = *body.IsPublished
		if ent.NewsIsPublished && ent.NewsPublishedDate == nil {
			now := time.Now()
			ent.NewsPublishedDate = &now
		}
	}

	now := time.Now()
	ent.NewsUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "news_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "news", ent.NewsID)
	return helper.JsonUpdated(c, "News updated", ent)
}

func (ctl *NewsController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where(
		"news_id = ? AND news_organization_id = ? AND news_school_id = ?",
		id, orgID, schoolID,
	).Delete(&model.NewsModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "news", id)
	return helper.JsonDeleted(c, "News deleted", nil)
}
