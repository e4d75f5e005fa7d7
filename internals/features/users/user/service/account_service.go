// file: internals/features/users/user/service/account_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	subsService "schoolhub_backend/internals/features/tenants/subscriptions/service"
	roleModel "schoolhub_backend/internals/features/users/roles/model"
	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CreateAccount writes the credential row and the tenant profile in one
// transaction. Staff accounts consume plan quota, so the limit check and
// the counter bump ride the same transaction as the insert.
func CreateAccount(db *gorm.DB, orgID uuid.UUID, req dto.CreateUserRequest) (model.UserModel, model.UserProfileModel, error) {
	var (
		user    model.UserModel
		profile model.UserProfileModel
	)

	hash, err := HashPassword(req.Password)
	if err != nil {
		return user, profile, err
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var role roleModel.RoleModel
		if err := tx.First(&role, "role_id = ? AND role_organization_id = ?", req.RoleID, orgID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Role not found in this organization")
			}
			return err
		}

		if req.IsStaff {
			if err := subsService.CheckStaffLimit(tx, orgID); err != nil {
				return err
			}
		}

		user = model.UserModel{
			UserName:  req.UserName,
			Email:     req.Email,
			Password:  hash,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsActive:  true,
			IsStaff:   req.IsStaff,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile = model.UserProfileModel{
			ProfileUserID:         user.ID,
			ProfileOrganizationID: orgID,
			ProfileSchoolID:       req.SchoolID,
			ProfileRoleID:         req.RoleID,
			ProfilePhone:          req.Phone,
			ProfileGender:         req.Gender,
			ProfileAddress:        req.Address,
			ProfileEmployeeNumber: req.EmployeeNumber,
			ProfileDateOfBirth:    req.DateOfBirth,
			ProfileIsActive:       true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		if req.IsStaff {
			return subsService.IncrementStaffCount(tx, orgID)
		}
		return nil
	})
	return user, profile, txErr
}

// DeactivateAccount soft-deletes the user and the profile together and
// releases the staff seat.
func DeactivateAccount(db *gorm.DB, orgID, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var profile model.UserProfileModel
		if err := tx.First(&profile,
			"profile_user_id = ? AND profile_organization_id = ?", userID, orgID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		var user model.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.IsOwner {
			return fiber.NewError(fiber.StatusForbidden, "Platform owner accounts cannot be removed")
		}

		now := time.Now()
		if err := tx.Model(&user).Updates(map[string]any{
			"is_active":  false,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&profile).Updates(map[string]any{
			"profile_is_active":  false,
			"profile_updated_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		if err := tx.Delete(&profile).Error; err != nil {
			return err
		}

		if user.IsStaff {
			return subsService.DecrementStaffCount(tx, orgID)
		}
		return nil
	})
}

// ChangePassword enforces the who-may-reset-whom matrix:
//   - anyone may change their own password, with the current one verified
//   - org admins may reset non-owner accounts inside their org, no current
//     password needed
//   - nobody resets a platform owner but the owner themselves
func ChangePassword(db *gorm.DB, actor helperAuth.Scope, targetUserID uuid.UUID, current, next string) error {
	var target model.UserModel
	if err := db.First(&target, "id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return err
	}

	self := actor.UserID == targetUserID
	switch {
	case self:
		if !CheckPassword(target.Password, current) {
			return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
		}
	case target.IsOwner:
		return fiber.NewError(fiber.StatusForbidden, "Cannot change this account's password")
	case actor.IsOwner:
		// platform owner may reset anyone below them
	case actor.HasPermission(constants.PermManageUsers):
		if actor.OrganizationID == uuid.Nil {
			return fiber.NewError(fiber.StatusForbidden, "No organization in scope")
		}
		var n int64
		if err := db.Table("user_profiles").
			Where("profile_user_id = ? AND profile_organization_id = ? AND profile_deleted_at IS NULL",
				targetUserID, actor.OrganizationID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
	default:
		return fiber.NewError(fiber.StatusForbidden, "Not allowed to change this password")
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return db.Model(&model.UserModel{}).
		Where("id = ?", targetUserID).
		Updates(map[string]any{"password": hash, "updated_at": time.Now()}).Error
}
