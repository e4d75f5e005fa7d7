// file: internals/features/communications/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type AnnouncementModel struct {
	AnnouncementID             uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementOrganizationID uuid.UUID `gorm:"column:announcement_organization_id;type:uuid;not null;index" json:"announcement_organization_id"`
	AnnouncementSchoolID       uuid.UUID `gorm:"column:announcement_school_id;type:uuid;not null;index" json:"announcement_school_id"`
	AnnouncementTitle          string    `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementContent        string    `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementPriority       string    `gorm:"column:announcement_priority;type:varchar(10);not null;default:'normal'" json:"announcement_priority"`

	// Audience selectors ({"roles": [...], "class_ids": [...]}); empty = everyone.
	AnnouncementTargetAudience datatypes.JSON `gorm:"column:announcement_target_audience;type:jsonb" json:"announcement_target_audience,omitempty"`

	AnnouncementIsPublished   bool       `gorm:"column:announcement_is_published;not null;default:false" json:"announcement_is_published"`
	AnnouncementPublishedDate *time.Time `gorm:"column:announcement_published_date" json:"announcement_published_date,omitempty"`
	AnnouncementExpiryDate    *time.Time `gorm:"column:announcement_expiry_date" json:"announcement_expiry_date,omitempty"`

	AnnouncementCreatedAt time.Time  `gorm:"column:announcement_created_at;not null;default:CURRENT_TIMESTAMP" json:"announcement_created_at"`
	AnnouncementUpdatedAt *time.Time `gorm:"column:announcement_updated_at" json:"announcement_updated_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
