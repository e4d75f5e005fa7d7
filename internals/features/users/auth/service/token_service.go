// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "schoolhub_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenIdentity is everything the access token carries about the caller.
// Organization and school ride along so public-ish reads can skip the
// scope join; the guarded groups still re-resolve against the database.
type TokenIdentity struct {
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	SchoolID       *uuid.UUID
	RoleSlug       string
	IsOwner        bool
	IsStaff        bool
}

func MakeAccessToken(secret string, id TokenIdentity, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":       id.UserID.String(),
		"role":     id.RoleSlug,
		"is_owner": id.IsOwner,
		"is_staff": id.IsStaff,
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}
	if id.OrganizationID != nil {
		claims["organization_id"] = id.OrganizationID.String()
	}
	if id.SchoolID != nil {
		claims["school_id"] = id.SchoolID.String()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

func MakeRefreshToken(secret string, userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// VerifyToken parses an HMAC token and returns its claims.
func VerifyToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// HashToken gives the storage form for refresh and blacklisted tokens so
// a database leak does not leak usable credentials.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func StoreRefreshToken(db *gorm.DB, userID uuid.UUID, raw string, expiresAt time.Time) error {
	return db.Create(&authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      HashToken(raw),
		RefreshTokenExpiresAt: expiresAt,
	}).Error
}

// ConsumeRefreshToken deletes the presented token; a second presentation
// of the same token fails, which is the rotation guarantee.
func ConsumeRefreshToken(db *gorm.DB, userID uuid.UUID, raw string) (bool, error) {
	res := db.Where(
		"refresh_token_user_id = ? AND refresh_token_hash = ? AND refresh_token_expires_at > ?",
		userID, HashToken(raw), time.Now(),
	).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func BlacklistToken(db *gorm.DB, raw string, expiresAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistTokenHash: HashToken(raw),
		TokenBlacklistExpiresAt: expiresAt,
	}).Error
}

// IsTokenBlacklisted backs the auth middleware's checker hook.
func IsTokenBlacklisted(db *gorm.DB) func(raw string) (bool, error) {
	return func(raw string) (bool, error) {
		var n int64
		err := db.Model(&authModel.TokenBlacklistModel{}).
			Where("token_blacklist_token_hash = ? AND token_blacklist_expires_at > ?", HashToken(raw), time.Now()).
			Count(&n).Error
		return n > 0, err
	}
}
