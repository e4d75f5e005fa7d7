// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Logged-out access tokens sit here until they would have expired anyway;
// the scheduler sweeps expired rows.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	TokenBlacklistTokenHash string    `gorm:"column:token_blacklist_token_hash;type:varchar(128);not null;uniqueIndex" json:"-"`
	TokenBlacklistExpiresAt time.Time `gorm:"column:token_blacklist_expires_at;not null;index" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;not null;default:CURRENT_TIMESTAMP" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
