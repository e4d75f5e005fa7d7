package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolhub_backend/internals/features/school/academics/parents/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func newParentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
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
		`CREATE TABLE parents (
			parent_id TEXT PRIMARY KEY,
			parent_organization_id TEXT NOT NULL,
			parent_school_id TEXT NOT NULL,
			parent_first_name TEXT NOT NULL,
			parent_last_name TEXT,
			parent_relation TEXT NOT NULL DEFAULT 'guardian',
			parent_email TEXT,
			parent_phone TEXT NOT NULL,
			parent_occupation TEXT,
			parent_address TEXT,
			parent_created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			parent_updated_at DATETIME
		)`,
		`CREATE TABLE students (
			student_id TEXT PRIMARY KEY,
			student_organization_id TEXT NOT NULL,
			student_school_id TEXT NOT NULL,
			student_admission_number TEXT NOT NULL,
			student_class_id TEXT,
			student_first_name TEXT NOT NULL,
			student_status TEXT NOT NULL DEFAULT 'active',
			student_created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			student_updated_at DATETIME,
			student_deleted_at DATETIME
		)`,
		`CREATE TABLE student_parents (
			student_parent_id TEXT PRIMARY KEY,
			student_parent_organization_id TEXT NOT NULL,
			student_parent_student_id TEXT NOT NULL,
			student_parent_parent_id TEXT NOT NULL,
			student_parent_is_primary INTEGER NOT NULL DEFAULT 0,
			student_parent_created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (student_parent_organization_id, student_parent_student_id, student_parent_parent_id)
		)`,
		`CREATE TABLE audit_logs (
			audit_log_id TEXT PRIMARY KEY,
			audit_log_organization_id TEXT NOT NULL,
			audit_log_user_id TEXT,
			audit_log_action TEXT NOT NULL,
			audit_log_model_name TEXT NOT NULL,
			audit_log_object_id TEXT NOT NULL,
			audit_log_changes TEXT,
			audit_log_ip_address TEXT,
			audit_log_user_agent TEXT,
			audit_log_created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}
	return db
}

func seedParent(t *testing.T, db *gorm.DB, orgID, schoolID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := db.Exec(
		`INSERT INTO parents (parent_id, parent_organization_id, parent_school_id, parent_first_name, parent_phone)
		 VALUES (?, ?, ?, ?, '0800000000')`,
		id, orgID, schoolID, name,
	).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	return id
}

func seedStudent(t *testing.T, db *gorm.DB, orgID, schoolID uuid.UUID, admission string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := db.Exec(
		`INSERT INTO students (student_id, student_organization_id, student_school_id, student_admission_number, student_first_name)
		 VALUES (?, ?, ?, ?, 'Student')`,
		id, orgID, schoolID, admission,
	).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return id
}

func linkRequest(t *testing.T, app *fiber.App, parentID, studentID uuid.UUID, primary bool) int {
	t.Helper()
	body := `{"student_parent_student_id":"` + studentID.String() + `","student_parent_is_primary":` +
		map[bool]string{true: "true", false: "false"}[primary] + `}`
	req := httptest.NewRequest("POST", "/parents/"+parentID.String()+"/students", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestLinkStudentKeepsEveryPrimaryContact(t *testing.T) {
	db := newParentTestDB(t)
	orgID, schoolID := uuid.New(), uuid.New()
	student := seedStudent(t, db, orgID, schoolID, "ADM-100")
	father := seedParent(t, db, orgID, schoolID, "Father")
	mother := seedParent(t, db, orgID, schoolID, "Mother")

	ctl := NewParentController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocScope, helperAuth.Scope{
			UserID:         uuid.New(),
			ProfileID:      uuid.New(),
			OrganizationID: orgID,
			SchoolID:       &schoolID,
		})
		return c.Next()
	})
	app.Post("/parents/:id/students", ctl.LinkStudent)

	if status := linkRequest(t, app, father, student, true); status != fiber.StatusCreated {
		t.Fatalf("first link status = %d, want 201", status)
	}
	if status := linkRequest(t, app, mother, student, true); status != fiber.StatusCreated {
		t.Fatalf("second link status = %d, want 201", status)
	}

	var primaries int64
	if err := db.Model(&model.StudentParentModel{}).
		Where("student_parent_student_id = ? AND student_parent_is_primary = ?", student, true).
		Count(&primaries).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if primaries != 2 {
		t.Errorf("primary links = %d, want 2: attaching a second primary contact must not demote the first", primaries)
	}
}

func TestLinkStudentRejectsDuplicatePair(t *testing.T) {
	db := newParentTestDB(t)
	orgID, schoolID := uuid.New(), uuid.New()
	student := seedStudent(t, db, orgID, schoolID, "ADM-101")
	parent := seedParent(t, db, orgID, schoolID, "Guardian")

	ctl := NewParentController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocScope, helperAuth.Scope{
			UserID:         uuid.New(),
			ProfileID:      uuid.New(),
			OrganizationID: orgID,
			SchoolID:       &schoolID,
		})
		return c.Next()
	})
	app.Post("/parents/:id/students", ctl.LinkStudent)

	if status := linkRequest(t, app, parent, student, false); status != fiber.StatusCreated {
		t.Fatalf("first link status = %d, want 201", status)
	}
	if status := linkRequest(t, app, parent, student, true); status != fiber.StatusConflict {
		t.Fatalf("duplicate link status = %d, want 409", status)
	}
}
