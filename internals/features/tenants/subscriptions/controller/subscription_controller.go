// file: internals/features/tenants/subscriptions/controller/subscription_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/subscriptions/dto"
	"schoolhub_backend/internals/features/tenants/subscriptions/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type SubscriptionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db, Validator: validator.New()}
}

/* ------------------------- owner side (/api/o) ------------------------- */

func (ctl *SubscriptionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	dbq := ctl.DB.Model(&model.SubscriptionModel{}).Preload("Plan")
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("subscription_status = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.SubscriptionModel
	if err := dbq.
		Order("subscription_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *SubscriptionController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var plan model.SubscriptionPlanModel
	if err := ctl.DB.First(&plan, "plan_id = ? AND plan_is_active = ?", body.PlanID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Plan not found or inactive")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "subscription_organization_id")
	}
	return helper.JsonCreated(c, "Subscription created", ent)
}

func (ctl *SubscriptionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.SubscriptionModel
	if err := ctl.DB.First(&ent, "subscription_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.PlanID != nil {
		ent.SubscriptionPlanID = *body.PlanID
	}
	if body.BillingCycle != nil {
		ent.SubscriptionBillingCycle = *body.BillingCycle
	}
	if body.EndsAt != nil {
		ent.SubscriptionEndsAt = body.EndsAt
	}
	if body.AutoRenew != nil {
		ent.SubscriptionAutoRenew = *body.AutoRenew
	}
	if body.Status != nil {
		ent.SubscriptionStatus = *body.Status
		if *body.Status == model.SubscriptionStatusCancelled && ent.SubscriptionCancelledAt == nil {
			now := time.Now()
			ent.SubscriptionCancelledAt = &now
		}
	}
	now := time.Now()
	ent.SubscriptionUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	return helper.JsonUpdated(c, "Subscription updated", ent)
}

/* ------------------------- admin side (/api/a) ------------------------- */

// Mine returns the caller's own subscription with its plan, so tenant
// dashboards can render usage against limits.
func (ctl *SubscriptionController) Mine(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No organization in scope")
	}

	var ent model.SubscriptionModel
	if err := ctl.DB.Preload("Plan").
		First(&ent, "subscription_organization_id = ?", sc.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}
