// file: internals/features/tenants/subscriptions/controller/plan_controller.go
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
)

type PlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db, Validator: validator.New()}
}

// ListPublic exposes active plans for the pricing page. No auth required.
func (ctl *PlanController) ListPublic(c *fiber.Ctx) error {
	var rows []model.SubscriptionPlanModel
	if err := ctl.DB.
		Where("plan_is_active = ?", true).
		Order("plan_display_order ASC, plan_price_monthly ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *PlanController) List(c *fiber.Ctx) error {
	var rows []model.SubscriptionPlanModel
	if err := ctl.DB.Order("plan_display_order ASC, plan_price_monthly ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *PlanController) Create(c *fiber.Ctx) error {
	var body dto.CreatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "plan_tier")
	}
	return helper.JsonCreated(c, "Plan created", ent)
}

func (ctl *PlanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.SubscriptionPlanModel
	if err := ctl.DB.First(&ent, "plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	body.Apply(&ent)
	now := time.Now()
	ent.PlanUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "plan_tier")
	}
	return helper.JsonUpdated(c, "Plan updated", ent)
}
