// file: internals/features/tenants/organizations/model/organization_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrganizationModel is the root tenant row. Subscriptions and schools
// reference it with ON DELETE RESTRICT, so a live tenant can only be
// soft-disabled via organization_is_active.
type OrganizationModel struct {
	OrganizationID         uuid.UUID      `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`
	OrganizationName       string         `gorm:"column:organization_name;type:varchar(255);not null" json:"organization_name"`
	OrganizationSlug       string         `gorm:"column:organization_slug;type:varchar(120);not null;uniqueIndex" json:"organization_slug"`
	OrganizationDomain     *string        `gorm:"column:organization_domain;type:varchar(255);uniqueIndex" json:"organization_domain,omitempty"`
	OrganizationEmail      string         `gorm:"column:organization_email;type:varchar(255);not null" json:"organization_email"`
	OrganizationPhone      string         `gorm:"column:organization_phone;type:varchar(20)" json:"organization_phone,omitempty"`
	OrganizationAddress    string         `gorm:"column:organization_address;type:text" json:"organization_address,omitempty"`
	OrganizationCity       string         `gorm:"column:organization_city;type:varchar(100)" json:"organization_city,omitempty"`
	OrganizationState      string         `gorm:"column:organization_state;type:varchar(100)" json:"organization_state,omitempty"`
	OrganizationCountry    string         `gorm:"column:organization_country;type:varchar(100);not null;default:'India'" json:"organization_country"`
	OrganizationPostalCode string         `gorm:"column:organization_postal_code;type:varchar(20)" json:"organization_postal_code,omitempty"`
	OrganizationIsActive   bool           `gorm:"column:organization_is_active;not null;default:true" json:"organization_is_active"`
	OrganizationIsVerified bool           `gorm:"column:organization_is_verified;not null;default:false" json:"organization_is_verified"`
	OrganizationSettings   datatypes.JSON `gorm:"column:organization_settings;type:jsonb" json:"organization_settings,omitempty"`

	OrganizationCreatedAt time.Time  `gorm:"column:organization_created_at;not null;default:CURRENT_TIMESTAMP" json:"organization_created_at"`
	OrganizationUpdatedAt *time.Time `gorm:"column:organization_updated_at" json:"organization_updated_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }
