// file: internals/features/tenants/subscriptions/model/subscription_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plan tiers mirror what billing knows how to price.
const (
	PlanTierBasic      = "basic"
	PlanTierStandard   = "standard"
	PlanTierPremium    = "premium"
	PlanTierEnterprise = "enterprise"
)

var AllPlanTiers = []string{PlanTierBasic, PlanTierStandard, PlanTierPremium, PlanTierEnterprise}

type SubscriptionPlanModel struct {
	PlanID           uuid.UUID      `gorm:"column:plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"plan_id"`
	PlanName         string         `gorm:"column:plan_name;type:varchar(100);not null" json:"plan_name"`
	PlanTier         string         `gorm:"column:plan_tier;type:varchar(20);not null;uniqueIndex" json:"plan_tier"`
	PlanDescription  string         `gorm:"column:plan_description;type:text" json:"plan_description,omitempty"`
	PlanPriceMonthly float64        `gorm:"column:plan_price_monthly;type:numeric(10,2);not null;default:0" json:"plan_price_monthly"`
	PlanPriceYearly  float64        `gorm:"column:plan_price_yearly;type:numeric(10,2);not null;default:0" json:"plan_price_yearly"`
	PlanMaxStudents  int            `gorm:"column:plan_max_students;not null;default:100" json:"plan_max_students"`
	PlanMaxStaff     int            `gorm:"column:plan_max_staff;not null;default:20" json:"plan_max_staff"`
	PlanMaxStorageMB int            `gorm:"column:plan_max_storage_mb;not null;default:1024" json:"plan_max_storage_mb"`
	PlanFeatures     datatypes.JSON `gorm:"column:plan_features;type:jsonb" json:"plan_features,omitempty"`
	PlanDisplayOrder int            `gorm:"column:plan_display_order;not null;default:0" json:"plan_display_order"`
	PlanIsActive     bool           `gorm:"column:plan_is_active;not null;default:true" json:"plan_is_active"`

	PlanCreatedAt time.Time  `gorm:"column:plan_created_at;not null;default:CURRENT_TIMESTAMP" json:"plan_created_at"`
	PlanUpdatedAt *time.Time `gorm:"column:plan_updated_at" json:"plan_updated_at,omitempty"`
}

func (SubscriptionPlanModel) TableName() string { return "subscription_plans" }
