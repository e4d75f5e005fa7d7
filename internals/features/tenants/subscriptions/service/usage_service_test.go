package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolhub_backend/internals/features/tenants/subscriptions/model"
)

func newUsageDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE subscription_plans (
			plan_id TEXT PRIMARY KEY,
			plan_max_students INTEGER NOT NULL,
			plan_max_staff INTEGER NOT NULL
		)`,
		`CREATE TABLE subscriptions (
			subscription_id TEXT PRIMARY KEY,
			subscription_organization_id TEXT NOT NULL UNIQUE,
			subscription_plan_id TEXT NOT NULL,
			subscription_status TEXT NOT NULL,
			subscription_students_count INTEGER NOT NULL DEFAULT 0,
			subscription_staff_count INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}
	return db
}

func seedUsage(t *testing.T, db *gorm.DB, status string, students, maxStudents int) uuid.UUID {
	t.Helper()
	orgID := uuid.New()
	planID := uuid.New()
	if err := db.Exec(
		`INSERT INTO subscription_plans (plan_id, plan_max_students, plan_max_staff) VALUES (?, ?, 10)`,
		planID, maxStudents,
	).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	if err := db.Exec(
		`INSERT INTO subscriptions
			(subscription_id, subscription_organization_id, subscription_plan_id, subscription_status, subscription_students_count, subscription_staff_count)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		uuid.New(), orgID, planID, status, students,
	).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}
	return orgID
}

func TestCheckStudentLimit(t *testing.T) {
	cases := []struct {
		name        string
		status      string
		students    int
		maxStudents int
		wantErr     error
	}{
		{"under the cap", model.SubscriptionStatusActive, 1, 2, nil},
		{"at the cap", model.SubscriptionStatusActive, 2, 2, ErrLimitReached},
		{"over the cap", model.SubscriptionStatusActive, 3, 2, ErrLimitReached},
		{"trial counts as usable", model.SubscriptionStatusTrial, 0, 2, nil},
		{"cancelled subscription refused", model.SubscriptionStatusCancelled, 0, 2, ErrNoSubscription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newUsageDB(t)
			orgID := seedUsage(t, db, tc.status, tc.students, tc.maxStudents)
			err := CheckStudentLimit(db, orgID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCheckStudentLimitNoSubscription(t *testing.T) {
	db := newUsageDB(t)
	err := CheckStudentLimit(db, uuid.New())
	if !errors.Is(err, ErrNoSubscription) {
		t.Fatalf("err = %v, want ErrNoSubscription", err)
	}
	if !IsLimitError(err) {
		t.Error("IsLimitError must cover the no-subscription refusal")
	}
}
