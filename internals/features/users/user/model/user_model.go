// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the credential row. Tenancy lives on the profile, not here,
// so one account could in principle be re-homed without touching auth.
type UserModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex" json:"user_name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(250)" json:"-"`
	FirstName string    `gorm:"column:first_name;type:varchar(100)" json:"first_name,omitempty"`
	LastName  string    `gorm:"column:last_name;type:varchar(100)" json:"last_name,omitempty"`
	GoogleID  *string   `gorm:"column:google_id;type:varchar(255);uniqueIndex" json:"google_id,omitempty"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsStaff   bool      `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	IsOwner   bool      `gorm:"column:is_owner;not null;default:false" json:"is_owner"`

	LastLoginAt *time.Time     `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (u UserModel) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.UserName
	}
}
