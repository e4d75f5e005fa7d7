// file: internals/features/users/user/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel binds an account to one tenant. Every scoped request
// resolves through this row, so its columns are the source of truth for
// organization and school membership.
type UserProfileModel struct {
	ProfileID             uuid.UUID  `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	ProfileUserID         uuid.UUID  `gorm:"column:profile_user_id;type:uuid;not null;uniqueIndex" json:"profile_user_id"`
	ProfileOrganizationID uuid.UUID  `gorm:"column:profile_organization_id;type:uuid;not null;index" json:"profile_organization_id"`
	ProfileSchoolID       *uuid.UUID `gorm:"column:profile_school_id;type:uuid;index" json:"profile_school_id,omitempty"`
	ProfileRoleID         uuid.UUID  `gorm:"column:profile_role_id;type:uuid;not null;index" json:"profile_role_id"`

	ProfilePhone          string     `gorm:"column:profile_phone;type:varchar(20)" json:"profile_phone,omitempty"`
	ProfileAvatarURL      *string    `gorm:"column:profile_avatar_url;type:text" json:"profile_avatar_url,omitempty"`
	ProfileDateOfBirth    *time.Time `gorm:"column:profile_date_of_birth;type:date" json:"profile_date_of_birth,omitempty"`
	ProfileGender         string     `gorm:"column:profile_gender;type:varchar(10)" json:"profile_gender,omitempty"`
	ProfileAddress        string     `gorm:"column:profile_address;type:text" json:"profile_address,omitempty"`
	ProfileEmployeeNumber *string    `gorm:"column:profile_employee_number;type:varchar(50)" json:"profile_employee_number,omitempty"`
	ProfileIsActive       bool       `gorm:"column:profile_is_active;not null;default:true" json:"profile_is_active"`

	ProfileCreatedAt time.Time      `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time      `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
	ProfileDeletedAt gorm.DeletedAt `gorm:"column:profile_deleted_at;index" json:"-"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
