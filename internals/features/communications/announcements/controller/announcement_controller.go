// file: internals/features/communications/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/announcements/dto"
	"schoolhub_backend/internals/features/communications/announcements/model"
	notifService "schoolhub_backend/internals/features/communications/notifications/service"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validator: validator.New()}
}

func (ctl *AnnouncementController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

// ListPublic returns published, unexpired announcements, newest first.
func (ctl *AnnouncementController) ListPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.
		Where("announcement_school_id = ? AND announcement_is_published = ?", schoolID, true).
		Where("announcement_expiry_date IS NULL OR announcement_expiry_date > ?", time.Now())
	if prio := strings.TrimSpace(strings.ToLower(c.Query("priority"))); prio != "" {
		q = q.Where("announcement_priority = ?", prio)
	}

	var rows []model.AnnouncementModel
	if err := q.
		Order("announcement_published_date DESC NULLS LAST, announcement_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_school_id = ?", schoolID)
	if prio := strings.TrimSpace(strings.ToLower(c.Query("priority"))); prio != "" {
		q = q.Where("announcement_priority = ?", prio)
	}
	if c.Query("is_published") != "" {
		q = q.Where("announcement_is_published = ?", c.Query("is_published") == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.AnnouncementOrganizationID = orgID
	ent.AnnouncementSchoolID = schoolID
	if ent.AnnouncementIsPublished && ent.AnnouncementPublishedDate == nil {
		now := time.Now()
		ent.AnnouncementPublishedDate = &now
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Insert failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "announcement", ent.AnnouncementID)
	if ent.AnnouncementIsPublished {
		ctl.notifyPublished(orgID, ent)
	}
	return helper.JsonCreated(c, "Announcement created", ent)
}

// notifyPublished fans a freshly published announcement out to every active
// profile in the tenant. Best-effort after the write commits; a failure here
// never fails the request.
func (ctl *AnnouncementController) notifyPublished(orgID uuid.UUID, ent model.AnnouncementModel) {
	var profileIDs []uuid.UUID
	if err := ctl.DB.Table("user_profiles").
		Where("profile_organization_id = ? AND profile_is_active = ? AND profile_deleted_at IS NULL",
			orgID, true).
		Pluck("profile_id", &profileIDs).Error; err != nil {
		log.Printf("[ERROR] announcement fan-out query failed: %v", err)
		return
	}
	link := "/announcements/" + ent.AnnouncementID.String()
	if err := notifService.NotifyMany(ctl.DB, orgID, profileIDs,
		"announcement", ent.AnnouncementTitle, ent.AnnouncementContent, &link); err != nil {
		log.Printf("[ERROR] announcement fan-out insert failed: %v", err)
	}
}

func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.AnnouncementModel
	if err := ctl.DB.First(&ent,
		"announcement_id = ? AND announcement_organization_id = ? AND announcement_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	wasPublished := ent.AnnouncementIsPublished
	before := announcementSnapshot(&ent)

	if body.Title != nil {
		ent.AnnouncementTitle = *body.Title
	}
	if body.Content != nil {
		ent.AnnouncementContent = *body.Content
	}
	if body.Priority != nil {
		ent.AnnouncementPriority = strings.ToLower(strings.TrimSpace(*body.Priority))
	}
	if body.TargetAudience != nil {
		ent.AnnouncementTargetAudience = body.TargetAudience
	}
	if body.PublishedDate != nil {
		ent.AnnouncementPublishedDate = body.PublishedDate
	}
	if body.ExpiryDate != nil {
		ent.AnnouncementExpiryDate = body.ExpiryDate
	}
	if body.IsPublished != nil {
		ent.AnnouncementIsPublished = *body.IsPublished
		if ent.AnnouncementIsPublished && ent.AnnouncementPublishedDate == nil {
			now := time.Now()
			ent.AnnouncementPublishedDate = &now
		}
	}

	now := time.Now()
	ent.AnnouncementUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.LogUpdate(ctl.DB, c, "announcement", ent.AnnouncementID, before, announcementSnapshot(&ent))
	if !wasPublished && ent.AnnouncementIsPublished {
		ctl.notifyPublished(orgID, ent)
	}
	return helper.JsonUpdated(c, "Announcement updated", ent)
}

func announcementSnapshot(ent *model.AnnouncementModel) map[string]any {
	return map[string]any{
		"announcement_title":        ent.AnnouncementTitle,
		"announcement_content":      ent.AnnouncementContent,
		"announcement_priority":     ent.AnnouncementPriority,
		"announcement_is_published": ent.AnnouncementIsPublished,
	}
}

func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where(
		"announcement_id = ? AND announcement_organization_id = ? AND announcement_school_id = ?",
		id, orgID, schoolID,
	).Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "announcement", id)
	return helper.JsonDeleted(c, "Announcement deleted", nil)
}
