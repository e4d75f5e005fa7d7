package helper

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newScopeDB(t *testing.T) *gorm.DB {
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
		`CREATE TABLE organizations (
			organization_id TEXT PRIMARY KEY,
			organization_is_active INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE schools (
			school_id TEXT PRIMARY KEY,
			school_is_active INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE roles (
			role_id TEXT PRIMARY KEY,
			role_slug TEXT NOT NULL,
			role_permissions TEXT
		)`,
		`CREATE TABLE user_profiles (
			profile_id TEXT PRIMARY KEY,
			profile_user_id TEXT NOT NULL,
			profile_organization_id TEXT NOT NULL,
			profile_school_id TEXT,
			profile_role_id TEXT NOT NULL,
			profile_is_active INTEGER NOT NULL DEFAULT 1,
			profile_deleted_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}
	return db
}

type scopeSeed struct {
	userID uuid.UUID
	orgID  uuid.UUID
	roleID uuid.UUID
}

func seedScope(t *testing.T, db *gorm.DB) scopeSeed {
	t.Helper()
	s := scopeSeed{userID: uuid.New(), orgID: uuid.New(), roleID: uuid.New()}
	if err := db.Exec(
		`INSERT INTO organizations (organization_id, organization_is_active) VALUES (?, 1)`,
		s.orgID,
	).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	if err := db.Exec(
		`INSERT INTO roles (role_id, role_slug, role_permissions) VALUES (?, 'teacher', '{}')`,
		s.roleID,
	).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return s
}

func insertProfile(t *testing.T, db *gorm.DB, s scopeSeed, orgID uuid.UUID, deletedAt *time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if err := db.Exec(
		`INSERT INTO user_profiles
			(profile_id, profile_user_id, profile_organization_id, profile_role_id, profile_is_active, profile_deleted_at)
		 VALUES (?, ?, ?, ?, 1, ?)`,
		id, s.userID, orgID, s.roleID, deletedAt,
	).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return id
}

// resolveVia runs ResolveScope inside a real request so the locals the JWT
// middleware would set are in place.
func resolveVia(t *testing.T, db *gorm.DB, userID uuid.UUID) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/scope", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, userID.String())
		sc, err := ResolveScope(c, db)
		if err != nil {
			var se *ScopeError
			if errors.As(err, &se) {
				return c.Status(se.Status).SendString(se.Code)
			}
			return err
		}
		return c.SendString(sc.OrganizationID.String())
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/scope", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestResolveScopeLiveProfile(t *testing.T) {
	db := newScopeDB(t)
	s := seedScope(t, db)
	insertProfile(t, db, s, s.orgID, nil)

	status, body := resolveVia(t, db, s.userID)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d (%s), want 200", status, body)
	}
	if body != s.orgID.String() {
		t.Errorf("resolved org = %s, want %s", body, s.orgID)
	}
}

func TestResolveScopeIgnoresDeletedProfile(t *testing.T) {
	db := newScopeDB(t)
	s := seedScope(t, db)
	gone := time.Now()
	insertProfile(t, db, s, s.orgID, &gone)

	status, body := resolveVia(t, db, s.userID)
	if status != fiber.StatusForbidden || body != "NO_PROFILE" {
		t.Fatalf("status = %d body = %q, want 403 NO_PROFILE", status, body)
	}
}

func TestResolveScopePrefersLiveOverDeleted(t *testing.T) {
	db := newScopeDB(t)
	s := seedScope(t, db)

	// Old tenancy soft-deleted, account re-homed into a fresh org.
	gone := time.Now()
	insertProfile(t, db, s, s.orgID, &gone)
	newOrg := uuid.New()
	if err := db.Exec(
		`INSERT INTO organizations (organization_id, organization_is_active) VALUES (?, 1)`,
		newOrg,
	).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	insertProfile(t, db, s, newOrg, nil)

	status, body := resolveVia(t, db, s.userID)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d (%s), want 200", status, body)
	}
	if body != newOrg.String() {
		t.Errorf("resolved org = %s, want live profile's %s", body, newOrg)
	}
}
