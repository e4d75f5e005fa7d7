// file: internals/features/tenants/subscriptions/dto/subscription_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/tenants/subscriptions/model"
)

/* =========================================================
   1) PLAN DTO
   ========================================================= */

type CreatePlanRequest struct {
	Name         string         `json:"plan_name" validate:"required,max=100"`
	Tier         string         `json:"plan_tier" validate:"required,oneof=basic standard premium enterprise"`
	Description  string         `json:"plan_description" validate:"omitempty"`
	PriceMonthly float64        `json:"plan_price_monthly" validate:"omitempty,gte=0"`
	PriceYearly  float64        `json:"plan_price_yearly" validate:"omitempty,gte=0"`
	MaxStudents  int            `json:"plan_max_students" validate:"omitempty,gt=0"`
	MaxStaff     int            `json:"plan_max_staff" validate:"omitempty,gt=0"`
	MaxStorageMB int            `json:"plan_max_storage_mb" validate:"omitempty,gt=0"`
	Features     datatypes.JSON `json:"plan_features" validate:"omitempty"`
	DisplayOrder int            `json:"plan_display_order" validate:"omitempty,gte=0"`
}

type UpdatePlanRequest struct {
	Name         *string         `json:"plan_name" validate:"omitempty,max=100"`
	Description  *string         `json:"plan_description" validate:"omitempty"`
	PriceMonthly *float64        `json:"plan_price_monthly" validate:"omitempty,gte=0"`
	PriceYearly  *float64        `json:"plan_price_yearly" validate:"omitempty,gte=0"`
	MaxStudents  *int            `json:"plan_max_students" validate:"omitempty,gt=0"`
	MaxStaff     *int            `json:"plan_max_staff" validate:"omitempty,gt=0"`
	MaxStorageMB *int            `json:"plan_max_storage_mb" validate:"omitempty,gt=0"`
	Features     *datatypes.JSON `json:"plan_features" validate:"omitempty"`
	DisplayOrder *int            `json:"plan_display_order" validate:"omitempty,gte=0"`
	IsActive     *bool           `json:"plan_is_active" validate:"omitempty"`
}

func (r CreatePlanRequest) ToModel() model.SubscriptionPlanModel {
	m := model.SubscriptionPlanModel{
		PlanName:         strings.TrimSpace(r.Name),
		PlanTier:         strings.TrimSpace(strings.ToLower(r.Tier)),
		PlanDescription:  strings.TrimSpace(r.Description),
		PlanPriceMonthly: r.PriceMonthly,
		PlanPriceYearly:  r.PriceYearly,
		PlanMaxStudents:  r.MaxStudents,
		PlanMaxStaff:     r.MaxStaff,
		PlanMaxStorageMB: r.MaxStorageMB,
		PlanFeatures:     r.Features,
		PlanDisplayOrder: r.DisplayOrder,
		PlanIsActive:     true,
	}
	if m.PlanMaxStudents == 0 {
		m.PlanMaxStudents = 100
	}
	if m.PlanMaxStaff == 0 {
		m.PlanMaxStaff = 20
	}
	if m.PlanMaxStorageMB == 0 {
		m.PlanMaxStorageMB = 1024
	}
	return m
}

func (r UpdatePlanRequest) Apply(m *model.SubscriptionPlanModel) {
	if r.Name != nil {
		m.PlanName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.PlanDescription = strings.TrimSpace(*r.Description)
	}
	if r.PriceMonthly != nil {
		m.PlanPriceMonthly = *r.PriceMonthly
	}
	if r.PriceYearly != nil {
		m.PlanPriceYearly = *r.PriceYearly
	}
	if r.MaxStudents != nil {
		m.PlanMaxStudents = *r.MaxStudents
	}
	if r.MaxStaff != nil {
		m.PlanMaxStaff = *r.MaxStaff
	}
	if r.MaxStorageMB != nil {
		m.PlanMaxStorageMB = *r.MaxStorageMB
	}
	if r.Features != nil {
		m.PlanFeatures = *r.Features
	}
	if r.DisplayOrder != nil {
		m.PlanDisplayOrder = *r.DisplayOrder
	}
	if r.IsActive != nil {
		m.PlanIsActive = *r.IsActive
	}
}

/* =========================================================
   2) SUBSCRIPTION DTO
   ========================================================= */

type CreateSubscriptionRequest struct {
	OrganizationID uuid.UUID  `json:"subscription_organization_id" validate:"required"`
	PlanID         uuid.UUID  `json:"subscription_plan_id" validate:"required"`
	BillingCycle   string     `json:"subscription_billing_cycle" validate:"omitempty,oneof=monthly quarterly yearly"`
	TrialEndsAt    *time.Time `json:"subscription_trial_ends_at" validate:"omitempty"`
	AutoRenew      *bool      `json:"subscription_auto_renew" validate:"omitempty"`
}

type UpdateSubscriptionRequest struct {
	PlanID       *uuid.UUID `json:"subscription_plan_id" validate:"omitempty"`
	Status       *string    `json:"subscription_status" validate:"omitempty,oneof=trial active suspended cancelled expired"`
	BillingCycle *string    `json:"subscription_billing_cycle" validate:"omitempty,oneof=monthly quarterly yearly"`
	EndsAt       *time.Time `json:"subscription_ends_at" validate:"omitempty"`
	AutoRenew    *bool      `json:"subscription_auto_renew" validate:"omitempty"`
}

func (r CreateSubscriptionRequest) ToModel() model.SubscriptionModel {
	cycle := strings.TrimSpace(strings.ToLower(r.BillingCycle))
	if cycle == "" {
		cycle = "monthly"
	}
	m := model.SubscriptionModel{
		SubscriptionOrganizationID: r.OrganizationID,
		SubscriptionPlanID:         r.PlanID,
		SubscriptionStatus:         model.SubscriptionStatusTrial,
		SubscriptionBillingCycle:   cycle,
		SubscriptionAutoRenew:      true,
		SubscriptionStartsAt:       time.Now(),
		SubscriptionTrialEndsAt:    r.TrialEndsAt,
	}
	if r.AutoRenew != nil {
		m.SubscriptionAutoRenew = *r.AutoRenew
	}
	return m
}
