// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One school per organization for now; the unique index on
// school_organization_id enforces it without a schema change later if
// multi-campus arrives.
type SchoolModel struct {
	SchoolID             uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`
	SchoolOrganizationID uuid.UUID `gorm:"column:school_organization_id;type:uuid;not null;uniqueIndex" json:"school_organization_id"`
	SchoolName           string    `gorm:"column:school_name;type:varchar(255);not null" json:"school_name"`
	SchoolSlug           string    `gorm:"column:school_slug;type:varchar(120);not null;uniqueIndex" json:"school_slug"`
	SchoolMotto          string    `gorm:"column:school_motto;type:varchar(255)" json:"school_motto,omitempty"`
	SchoolEmail          string    `gorm:"column:school_email;type:varchar(255)" json:"school_email,omitempty"`
	SchoolPhone          string    `gorm:"column:school_phone;type:varchar(20)" json:"school_phone,omitempty"`
	SchoolWebsite        *string   `gorm:"column:school_website;type:varchar(255)" json:"school_website,omitempty"`
	SchoolAddress        string    `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolCity           string    `gorm:"column:school_city;type:varchar(100)" json:"school_city,omitempty"`
	SchoolState          string    `gorm:"column:school_state;type:varchar(100)" json:"school_state,omitempty"`
	SchoolPostalCode     string    `gorm:"column:school_postal_code;type:varchar(20)" json:"school_postal_code,omitempty"`
	SchoolLogoURL        *string   `gorm:"column:school_logo_url;type:text" json:"school_logo_url,omitempty"`
	SchoolEstablishedYear *int     `gorm:"column:school_established_year" json:"school_established_year,omitempty"`
	SchoolPrincipalName  string    `gorm:"column:school_principal_name;type:varchar(150)" json:"school_principal_name,omitempty"`
	SchoolIsActive       bool      `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	SchoolSettings       datatypes.JSON `gorm:"column:school_settings;type:jsonb" json:"school_settings,omitempty"`

	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;not null;default:CURRENT_TIMESTAMP" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
