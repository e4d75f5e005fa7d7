// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	userModel "schoolhub_backend/internals/features/users/user/model"
	userService "schoolhub_backend/internals/features/users/user/service"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type scopeIdentityRow struct {
	OrganizationID *uuid.UUID `gorm:"column:profile_organization_id"`
	SchoolID       *uuid.UUID `gorm:"column:profile_school_id"`
	RoleSlug       string     `gorm:"column:role_slug"`
}

// identityFor loads the tenant context a token should carry. Accounts
// without a profile (platform owners) just get empty tenant claims.
func identityFor(db *gorm.DB, u userModel.UserModel) (TokenIdentity, error) {
	id := TokenIdentity{
		UserID:  u.ID,
		IsOwner: u.IsOwner,
		IsStaff: u.IsStaff,
	}
	if u.IsOwner {
		id.RoleSlug = "owner"
		return id, nil
	}

	var row scopeIdentityRow
	err := db.Raw(`
		SELECT p.profile_organization_id, p.profile_school_id, r.role_slug
		FROM user_profiles p
		JOIN roles r ON r.role_id = p.profile_role_id
		WHERE p.profile_user_id = ? AND p.profile_deleted_at IS NULL
		LIMIT 1
	`, u.ID).Scan(&row).Error
	if err != nil {
		return id, err
	}
	id.OrganizationID = row.OrganizationID
	id.SchoolID = row.SchoolID
	id.RoleSlug = row.RoleSlug
	return id, nil
}

func issuePair(db *gorm.DB, u userModel.UserModel) (TokenPair, error) {
	var pair TokenPair

	ident, err := identityFor(db, u)
	if err != nil {
		return pair, err
	}

	now := time.Now()
	access, err := MakeAccessToken(configs.JWTSecret, ident, now)
	if err != nil {
		return pair, err
	}
	refresh, err := MakeRefreshToken(configs.JWTRefreshSecret, u.ID, now)
	if err != nil {
		return pair, err
	}
	if err := StoreRefreshToken(db, u.ID, refresh, now.Add(RefreshTokenTTL)); err != nil {
		return pair, err
	}

	pair.AccessToken = access
	pair.RefreshToken = refresh
	return pair, nil
}

// Register creates a bare account and signs it in. The account has no
// tenant until an org admin attaches a profile; until then only /api/u
// endpoints work for it.
func Register(db *gorm.DB, userName, email, password, firstName, lastName string) (userModel.UserModel, TokenPair, error) {
	var user userModel.UserModel

	hash, err := userService.HashPassword(password)
	if err != nil {
		return user, TokenPair{}, err
	}

	user = userModel.UserModel{
		UserName:  strings.TrimSpace(strings.ToLower(userName)),
		Email:     strings.TrimSpace(strings.ToLower(email)),
		Password:  hash,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		IsActive:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		return user, TokenPair{}, err
	}

	pair, err := issuePair(db, user)
	return user, pair, err
}

// Login accepts username or email as the identifier.
func Login(db *gorm.DB, identifier, password string) (userModel.UserModel, TokenPair, error) {
	var user userModel.UserModel
	identifier = strings.TrimSpace(strings.ToLower(identifier))

	err := db.Where("user_name = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return user, TokenPair{}, err
	}
	if !user.IsActive {
		return user, TokenPair{}, fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	if !userService.CheckPassword(user.Password, password) {
		return user, TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	_ = db.Model(&user).Update("last_login_at", now).Error

	pair, err := issuePair(db, user)
	return user, pair, err
}

// LoginWithGoogle verifies the ID token against our client id and signs in
// the matching account. Unknown emails are rejected; provisioning stays an
// admin action.
func LoginWithGoogle(db *gorm.DB, idToken string) (userModel.UserModel, TokenPair, error) {
	var user userModel.UserModel

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return user, TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return user, TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.TrimSpace(strings.ToLower(claims.Email))
	if email == "" {
		return user, TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Google token has no email")
	}

	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, TokenPair{}, fiber.NewError(fiber.StatusForbidden, "No account for this Google identity")
		}
		return user, TokenPair{}, err
	}
	if !user.IsActive {
		return user, TokenPair{}, fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}

	if user.GoogleID == nil && claims.Sub != "" {
		sub := claims.Sub
		_ = db.Model(&user).Update("google_id", sub).Error
		user.GoogleID = &sub
	}

	now := time.Now()
	_ = db.Model(&user).Update("last_login_at", now).Error

	pair, err := issuePair(db, user)
	return user, pair, err
}

// Refresh rotates the refresh token and mints a fresh pair.
func Refresh(db *gorm.DB, rawRefresh string) (TokenPair, error) {
	claims, err := VerifyToken(configs.JWTRefreshSecret, rawRefresh)
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	ok, err := ConsumeRefreshToken(db, userID, rawRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	if !ok {
		return TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token expired or already used")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return TokenPair{}, fiber.NewError(fiber.StatusUnauthorized, "Account no longer exists")
	}
	if !user.IsActive {
		return TokenPair{}, fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	return issuePair(db, user)
}

// Logout blacklists the access token for its remaining lifetime and drops
// the refresh token if one was sent.
func Logout(db *gorm.DB, rawAccess, rawRefresh string) error {
	if rawAccess != "" {
		exp := time.Now().Add(AccessTokenTTL)
		if claims, err := VerifyToken(configs.JWTSecret, rawAccess); err == nil {
			if v, ok := claims["exp"].(float64); ok {
				exp = time.Unix(int64(v), 0)
			}
		}
		if err := BlacklistToken(db, rawAccess, exp); err != nil {
			return err
		}
	}
	if rawRefresh != "" {
		_ = db.Exec("DELETE FROM refresh_tokens WHERE refresh_token_hash = ?", HashToken(rawRefresh)).Error
	}
	return nil
}
