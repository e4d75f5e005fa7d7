// file: internals/features/tenants/subscriptions/service/usage_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/subscriptions/model"
)

// ErrLimitReached maps to 422 LIMIT_REACHED at the controller layer.
var ErrLimitReached = fiber.NewError(fiber.StatusUnprocessableEntity, "Subscription limit reached")

var ErrNoSubscription = fiber.NewError(fiber.StatusForbidden, "Organization has no active subscription")

type usageRow struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id"`
	Status         string    `gorm:"column:subscription_status"`
	StudentsCount  int       `gorm:"column:subscription_students_count"`
	StaffCount     int       `gorm:"column:subscription_staff_count"`
	MaxStudents    int       `gorm:"column:plan_max_students"`
	MaxStaff       int       `gorm:"column:plan_max_staff"`
}

func loadUsage(tx *gorm.DB, orgID uuid.UUID) (usageRow, error) {
	// Locking the subscription row serializes concurrent admits so two
	// requests at max-1 cannot both pass the check.
	q := `
		SELECT s.subscription_id, s.subscription_status,
		       s.subscription_students_count, s.subscription_staff_count,
		       p.plan_max_students, p.plan_max_staff
		FROM subscriptions s
		JOIN subscription_plans p ON p.plan_id = s.subscription_plan_id
		WHERE s.subscription_organization_id = ?
		LIMIT 1`
	if tx.Dialector.Name() == "postgres" {
		q += " FOR UPDATE OF s"
	}

	var row usageRow
	err := tx.Raw(q, orgID).Scan(&row).Error
	if err != nil {
		return row, err
	}
	if row.SubscriptionID == uuid.Nil {
		return row, ErrNoSubscription
	}
	return row, nil
}

func usable(status string) bool {
	return status == model.SubscriptionStatusTrial || status == model.SubscriptionStatusActive
}

// CheckStudentLimit must run inside the same transaction that inserts the
// student so the counter bump and the row land or roll back together.
func CheckStudentLimit(tx *gorm.DB, orgID uuid.UUID) error {
	row, err := loadUsage(tx, orgID)
	if err != nil {
		return err
	}
	if !usable(row.Status) {
		return ErrNoSubscription
	}
	if row.StudentsCount >= row.MaxStudents {
		return ErrLimitReached
	}
	return nil
}

func CheckStaffLimit(tx *gorm.DB, orgID uuid.UUID) error {
	row, err := loadUsage(tx, orgID)
	if err != nil {
		return err
	}
	if !usable(row.Status) {
		return ErrNoSubscription
	}
	if row.StaffCount >= row.MaxStaff {
		return ErrLimitReached
	}
	return nil
}

func bumpCounter(tx *gorm.DB, orgID uuid.UUID, column string, delta int) error {
	expr := fmt.Sprintf("GREATEST(%s + ?, 0)", column)
	return tx.Model(&model.SubscriptionModel{}).
		Where("subscription_organization_id = ?", orgID).
		Update(column, gorm.Expr(expr, delta)).Error
}

func IncrementStudentCount(tx *gorm.DB, orgID uuid.UUID) error {
	return bumpCounter(tx, orgID, "subscription_students_count", 1)
}

func DecrementStudentCount(tx *gorm.DB, orgID uuid.UUID) error {
	return bumpCounter(tx, orgID, "subscription_students_count", -1)
}

func IncrementStaffCount(tx *gorm.DB, orgID uuid.UUID) error {
	return bumpCounter(tx, orgID, "subscription_staff_count", 1)
}

func DecrementStaffCount(tx *gorm.DB, orgID uuid.UUID) error {
	return bumpCounter(tx, orgID, "subscription_staff_count", -1)
}

// IsLimitError lets controllers distinguish quota refusals from plumbing
// failures without string matching.
func IsLimitError(err error) bool {
	return errors.Is(err, ErrLimitReached) || errors.Is(err, ErrNoSubscription)
}
