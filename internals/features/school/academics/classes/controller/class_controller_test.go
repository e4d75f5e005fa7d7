package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolhub_backend/internals/features/school/academics/classes/model"
	studentModel "schoolhub_backend/internals/features/school/academics/students/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func newClassTestDB(t *testing.T) *gorm.DB {
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
		`CREATE TABLE classes (
			class_id TEXT PRIMARY KEY,
			class_organization_id TEXT NOT NULL,
			class_school_id TEXT NOT NULL,
			class_grade TEXT NOT NULL,
			class_section TEXT NOT NULL,
			class_name TEXT NOT NULL,
			class_teacher_id TEXT,
			class_room TEXT,
			class_capacity INTEGER NOT NULL DEFAULT 40,
			class_created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			class_updated_at DATETIME
		)`,
		`CREATE TABLE students (
			student_id TEXT PRIMARY KEY,
			student_organization_id TEXT NOT NULL,
			student_school_id TEXT NOT NULL,
			student_admission_number TEXT NOT NULL,
			student_class_id TEXT,
			student_first_name TEXT NOT NULL,
			student_last_name TEXT,
			student_gender TEXT,
			student_date_of_birth DATETIME,
			student_blood_group TEXT,
			student_email TEXT,
			student_phone TEXT,
			student_address TEXT,
			student_photo_url TEXT,
			student_admission_date DATETIME,
			student_status TEXT NOT NULL DEFAULT 'active',
			student_created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			student_updated_at DATETIME,
			student_deleted_at DATETIME
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

func classTestApp(db *gorm.DB, sc helperAuth.Scope) *fiber.App {
	ctl := NewClassController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocScope, sc)
		return c.Next()
	})
	app.Delete("/classes/:id", ctl.Delete)
	return app
}

func TestDeleteClassUnassignsStudents(t *testing.T) {
	db := newClassTestDB(t)
	orgID, schoolID := uuid.New(), uuid.New()

	cls := model.ClassModel{
		ClassID:             uuid.New(),
		ClassOrganizationID: orgID,
		ClassSchoolID:       schoolID,
		ClassGrade:          "7",
		ClassSection:        "A",
		ClassName:           "Grade 7A",
	}
	if err := db.Create(&cls).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	stu := studentModel.StudentModel{
		StudentID:              uuid.New(),
		StudentOrganizationID:  orgID,
		StudentSchoolID:        schoolID,
		StudentAdmissionNumber: "ADM-001",
		StudentClassID:         &cls.ClassID,
		StudentFirstName:       "Sari",
	}
	if err := db.Create(&stu).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	app := classTestApp(db, helperAuth.Scope{
		UserID:         uuid.New(),
		ProfileID:      uuid.New(),
		OrganizationID: orgID,
		SchoolID:       &schoolID,
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/classes/"+cls.ClassID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: deleting a class with enrolled students must succeed", resp.StatusCode)
	}

	var classCount int64
	if err := db.Model(&model.ClassModel{}).Where("class_id = ?", cls.ClassID).Count(&classCount).Error; err != nil {
		t.Fatalf("count classes: %v", err)
	}
	if classCount != 0 {
		t.Error("class row survived the delete")
	}

	var got studentModel.StudentModel
	if err := db.First(&got, "student_id = ?", stu.StudentID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if got.StudentClassID != nil {
		t.Errorf("student_class_id = %v, want NULL after class delete", got.StudentClassID)
	}
}

func TestDeleteClassCrossTenantRollsBack(t *testing.T) {
	db := newClassTestDB(t)
	orgID, schoolID := uuid.New(), uuid.New()

	cls := model.ClassModel{
		ClassID:             uuid.New(),
		ClassOrganizationID: orgID,
		ClassSchoolID:       schoolID,
		ClassGrade:          "8",
		ClassSection:        "B",
		ClassName:           "Grade 8B",
	}
	if err := db.Create(&cls).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	stu := studentModel.StudentModel{
		StudentID:              uuid.New(),
		StudentOrganizationID:  orgID,
		StudentSchoolID:        schoolID,
		StudentAdmissionNumber: "ADM-002",
		StudentClassID:         &cls.ClassID,
		StudentFirstName:       "Budi",
	}
	if err := db.Create(&stu).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	// Another tenant's scope: the class must look absent and the student
	// must keep the assignment.
	otherSchool := uuid.New()
	app := classTestApp(db, helperAuth.Scope{
		UserID:         uuid.New(),
		ProfileID:      uuid.New(),
		OrganizationID: uuid.New(),
		SchoolID:       &otherSchool,
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/classes/"+cls.ClassID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var got studentModel.StudentModel
	if err := db.First(&got, "student_id = ?", stu.StudentID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if got.StudentClassID == nil || *got.StudentClassID != cls.ClassID {
		t.Error("cross-tenant delete attempt touched the student row")
	}
}
