// file: internals/features/communications/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/events/dto"
	"schoolhub_backend/internals/features/communications/events/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validator: validator.New()}
}

func (ctl *EventController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

// ListPublic lists published events; ?upcoming=true keeps only events that
// have not started yet, soonest first.
func (ctl *EventController) ListPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 10, 50)
	q := ctl.DB.Model(&model.EventModel{}).
		Where("event_school_id = ? AND event_is_published = ?", schoolID, true)
	order := "event_start_at DESC"
	if c.Query("upcoming") == "true" {
		q = q.Where("event_start_at >= ?", time.Now())
		order = "event_start_at ASC"
	}
	if t := strings.TrimSpace(strings.ToLower(c.Query("type"))); t != "" {
		q = q.Where("event_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.EventModel
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *EventController) GetPublic(c *fiber.Ctx) error {
	schoolID, err := resolveSchool(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.EventModel
	if err := ctl.DB.First(&ent,
		"event_school_id = ? AND event_slug = ? AND event_is_published = ?",
		schoolID, c.Params("eventSlug"), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *EventController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.EventModel{}).Where("event_school_id = ?", schoolID)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("event_title ILIKE ?", "%"+s+"%")
	}
	if t := strings.TrimSpace(strings.ToLower(c.Query("type"))); t != "" {
		q = q.Where("event_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.EventModel
	if err := q.Order("event_start_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.EventOrganizationID = orgID
	ent.EventSchoolID = schoolID
	if ent.EventSlug == "" {
		ent.EventSlug = helper.GenerateSlug(ent.EventTitle)
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "event_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "event", ent.EventID)
	return helper.JsonCreated(c, "Event created", ent)
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.EventModel
	if err := ctl.DB.First(&ent,
		"event_id = ? AND event_organization_id = ? AND event_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Title != nil {
		ent.EventTitle = *body.Title
	}
	if body.Description != nil {
		ent.EventDescription = *body.Description
	}
	if body.Type != nil {
		ent.EventType = strings.ToLower(strings.TrimSpace(*body.Type))
	}
	if body.Location != nil {
		ent.EventLocation = *body.Location
	}
	if body.StartAt != nil {
		ent.EventStartAt = *body.StartAt
	}
	if body.EndAt != nil {
		ent.EventEndAt = body.EndAt
	}
	if body.RegistrationRequired != nil {
		ent.EventRegistrationRequired = *body.RegistrationRequired
	}
	if body.RegistrationURL != nil {
		ent.EventRegistrationURL = body.RegistrationURL
	}
	if body.RegistrationDeadline != nil {
		ent.EventRegistrationDeadline = body.RegistrationDeadline
	}
	if body.IsPublished != nil {
		ent.EventIsPublished = *body.IsPublished
	}

	if ent.EventEndAt != nil && !ent.EventEndAt.After(ent.EventStartAt) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Event end must be after start")
	}

	now := time.Now()
	ent.EventUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "event_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "event", ent.EventID)
	return helper.JsonUpdated(c, "Event updated", ent)
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.Where(
		"event_id = ? AND event_organization_id = ? AND event_school_id = ?",
		id, orgID, schoolID,
	).Delete(&model.EventModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "event", id)
	return helper.JsonDeleted(c, "Event deleted", nil)
}
