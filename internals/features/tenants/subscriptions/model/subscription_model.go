// file: internals/features/tenants/subscriptions/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionStatusTrial     = "trial"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

var AllSubscriptionStatuses = []string{
	SubscriptionStatusTrial,
	SubscriptionStatusActive,
	SubscriptionStatusSuspended,
	SubscriptionStatusCancelled,
	SubscriptionStatusExpired,
}

// One subscription per organization. The usage counters are bumped
// atomically by the student/staff services, never recomputed from counts.
type SubscriptionModel struct {
	SubscriptionID             uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`
	SubscriptionOrganizationID uuid.UUID `gorm:"column:subscription_organization_id;type:uuid;not null;uniqueIndex" json:"subscription_organization_id"`
	SubscriptionPlanID         uuid.UUID `gorm:"column:subscription_plan_id;type:uuid;not null;index" json:"subscription_plan_id"`
	SubscriptionStatus         string    `gorm:"column:subscription_status;type:varchar(20);not null;default:'trial'" json:"subscription_status"`
	SubscriptionBillingCycle   string    `gorm:"column:subscription_billing_cycle;type:varchar(10);not null;default:'monthly'" json:"subscription_billing_cycle"`

	SubscriptionStartsAt      time.Time  `gorm:"column:subscription_starts_at;not null;default:CURRENT_TIMESTAMP" json:"subscription_starts_at"`
	SubscriptionEndsAt        *time.Time `gorm:"column:subscription_ends_at" json:"subscription_ends_at,omitempty"`
	SubscriptionTrialEndsAt   *time.Time `gorm:"column:subscription_trial_ends_at" json:"subscription_trial_ends_at,omitempty"`
	SubscriptionCancelledAt   *time.Time `gorm:"column:subscription_cancelled_at" json:"subscription_cancelled_at,omitempty"`
	SubscriptionAutoRenew     bool       `gorm:"column:subscription_auto_renew;not null;default:true" json:"subscription_auto_renew"`
	SubscriptionStudentsCount int        `gorm:"column:subscription_students_count;not null;default:0" json:"subscription_students_count"`
	SubscriptionStaffCount    int        `gorm:"column:subscription_staff_count;not null;default:0" json:"subscription_staff_count"`
	SubscriptionStorageMBUsed int        `gorm:"column:subscription_storage_mb_used;not null;default:0" json:"subscription_storage_mb_used"`

	SubscriptionCreatedAt time.Time  `gorm:"column:subscription_created_at;not null;default:CURRENT_TIMESTAMP" json:"subscription_created_at"`
	SubscriptionUpdatedAt *time.Time `gorm:"column:subscription_updated_at" json:"subscription_updated_at,omitempty"`

	Plan *SubscriptionPlanModel `gorm:"foreignKey:SubscriptionPlanID;references:PlanID" json:"plan,omitempty"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }
