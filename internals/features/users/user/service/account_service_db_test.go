package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/users/user/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT,
			first_name TEXT,
			last_name TEXT,
			google_id TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			is_staff INTEGER NOT NULL DEFAULT 0,
			is_owner INTEGER NOT NULL DEFAULT 0,
			last_login_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE user_profiles (
			profile_id TEXT PRIMARY KEY,
			profile_user_id TEXT NOT NULL,
			profile_organization_id TEXT NOT NULL,
			profile_school_id TEXT,
			profile_role_id TEXT NOT NULL,
			profile_phone TEXT,
			profile_avatar_url TEXT,
			profile_date_of_birth DATETIME,
			profile_gender TEXT,
			profile_address TEXT,
			profile_employee_number TEXT,
			profile_is_active INTEGER NOT NULL DEFAULT 1,
			profile_created_at DATETIME,
			profile_updated_at DATETIME,
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

func seedAccount(t *testing.T, db *gorm.DB, orgID uuid.UUID, name, password string, owner bool) model.UserModel {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := model.UserModel{
		ID:       uuid.New(),
		UserName: name,
		Email:    name + "@example.test",
		Password: hash,
		IsActive: true,
		IsOwner:  owner,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if orgID != uuid.Nil {
		profile := model.UserProfileModel{
			ProfileID:             uuid.New(),
			ProfileUserID:         user.ID,
			ProfileOrganizationID: orgID,
			ProfileRoleID:         uuid.New(),
			ProfileIsActive:       true,
		}
		if err := db.Create(&profile).Error; err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}
	return user
}

func errStatus(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}

func TestDeactivateAccountFlagsBothRows(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	user := seedAccount(t, db, orgID, "teacher1", "secret-pass", false)

	if err := DeactivateAccount(db, orgID, user.ID); err != nil {
		t.Fatalf("DeactivateAccount: %v", err)
	}

	var gotUser model.UserModel
	if err := db.Unscoped().First(&gotUser, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if gotUser.IsActive {
		t.Error("user is_active still true after deactivation")
	}
	if !gotUser.DeletedAt.Valid {
		t.Error("user not soft-deleted")
	}

	var gotProfile model.UserProfileModel
	if err := db.Unscoped().First(&gotProfile, "profile_user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if gotProfile.ProfileIsActive {
		t.Error("profile_is_active still true after deactivation")
	}
	if !gotProfile.ProfileDeletedAt.Valid {
		t.Error("profile not soft-deleted")
	}
}

func TestDeactivateAccountRefusesOwner(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	owner := seedAccount(t, db, orgID, "platform", "secret-pass", true)

	err := DeactivateAccount(db, orgID, owner.ID)
	if got := errStatus(err); got != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", got, fiber.StatusForbidden)
	}

	var gotUser model.UserModel
	if err := db.First(&gotUser, "id = ?", owner.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !gotUser.IsActive {
		t.Error("owner account was deactivated")
	}
}

func TestDeactivateAccountWrongOrg(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	user := seedAccount(t, db, orgID, "teacher2", "secret-pass", false)

	err := DeactivateAccount(db, uuid.New(), user.ID)
	if got := errStatus(err); got != fiber.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, fiber.StatusNotFound)
	}
}

func TestChangePasswordMatrix(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()

	cases := []struct {
		name       string
		actor      func(member, owner, outsider model.UserModel) helperAuth.Scope
		target     func(member, owner, outsider model.UserModel) uuid.UUID
		current    string
		wantStatus int
	}{
		{
			name: "self with correct current password",
			actor: func(member, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{UserID: member.ID, OrganizationID: orgA}
			},
			target:     func(member, _, _ model.UserModel) uuid.UUID { return member.ID },
			current:    "member-pass",
			wantStatus: 0,
		},
		{
			name: "self with wrong current password",
			actor: func(member, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{UserID: member.ID, OrganizationID: orgA}
			},
			target:     func(member, _, _ model.UserModel) uuid.UUID { return member.ID },
			current:    "not-it",
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name: "admin resets member in own org",
			actor: func(_, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{
					UserID:         uuid.New(),
					OrganizationID: orgA,
					Permissions:    map[string]bool{constants.PermManageUsers: true},
				}
			},
			target:     func(member, _, _ model.UserModel) uuid.UUID { return member.ID },
			wantStatus: 0,
		},
		{
			name: "admin cannot reach another org's account",
			actor: func(_, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{
					UserID:         uuid.New(),
					OrganizationID: orgA,
					Permissions:    map[string]bool{constants.PermManageUsers: true},
				}
			},
			target:     func(_, _, outsider model.UserModel) uuid.UUID { return outsider.ID },
			wantStatus: fiber.StatusNotFound,
		},
		{
			name: "admin cannot reset a platform owner",
			actor: func(_, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{
					UserID:         uuid.New(),
					OrganizationID: orgA,
					Permissions:    map[string]bool{constants.PermManageUsers: true},
				}
			},
			target:     func(_, owner, _ model.UserModel) uuid.UUID { return owner.ID },
			wantStatus: fiber.StatusForbidden,
		},
		{
			name: "platform owner resets anyone below",
			actor: func(_, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{UserID: uuid.New(), IsOwner: true}
			},
			target:     func(member, _, _ model.UserModel) uuid.UUID { return member.ID },
			wantStatus: 0,
		},
		{
			name: "no permission means no reset",
			actor: func(_, _, _ model.UserModel) helperAuth.Scope {
				return helperAuth.Scope{UserID: uuid.New(), OrganizationID: orgA}
			},
			target:     func(member, _, _ model.UserModel) uuid.UUID { return member.ID },
			wantStatus: fiber.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			member := seedAccount(t, db, orgA, "member", "member-pass", false)
			owner := seedAccount(t, db, uuid.Nil, "platform", "owner-pass", true)
			outsider := seedAccount(t, db, orgB, "outsider", "outsider-pass", false)

			err := ChangePassword(db, tc.actor(member, owner, outsider),
				tc.target(member, owner, outsider), tc.current, "brand-new-pass")
			if got := errStatus(err); got != tc.wantStatus {
				t.Fatalf("status = %d (err %v), want %d", got, err, tc.wantStatus)
			}

			var got model.UserModel
			if err := db.First(&got, "id = ?", tc.target(member, owner, outsider)).Error; err != nil {
				t.Fatalf("reload target: %v", err)
			}
			changed := CheckPassword(got.Password, "brand-new-pass")
			if tc.wantStatus == 0 && !changed {
				t.Error("password not updated on allowed change")
			}
			if tc.wantStatus != 0 && changed {
				t.Error("password updated on refused change")
			}
		})
	}
}
