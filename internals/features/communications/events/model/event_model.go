// file: internals/features/communications/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAcademic = "academic"
	EventTypeSports   = "sports"
	EventTypeCultural = "cultural"
	EventTypeHoliday  = "holiday"
	EventTypeMeeting  = "meeting"
	EventTypeOther    = "other"
)

type EventModel struct {
	EventID             uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventOrganizationID uuid.UUID `gorm:"column:event_organization_id;type:uuid;not null;index:idx_events_org_school_slug,unique" json:"event_organization_id"`
	EventSchoolID       uuid.UUID `gorm:"column:event_school_id;type:uuid;not null;index:idx_events_org_school_slug,unique" json:"event_school_id"`
	EventSlug           string    `gorm:"column:event_slug;type:varchar(160);not null;index:idx_events_org_school_slug,unique" json:"event_slug"`
	EventTitle          string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription    string    `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	EventType           string    `gorm:"column:event_type;type:varchar(20);not null;default:'other'" json:"event_type"`
	EventLocation       string    `gorm:"column:event_location;type:varchar(255)" json:"event_location,omitempty"`

	EventStartAt time.Time  `gorm:"column:event_start_at;not null;index" json:"event_start_at"`
	EventEndAt   *time.Time `gorm:"column:event_end_at" json:"event_end_at,omitempty"`

	EventRegistrationRequired bool       `gorm:"column:event_registration_required;not null;default:false" json:"event_registration_required"`
	EventRegistrationURL      *string    `gorm:"column:event_registration_url;type:text" json:"event_registration_url,omitempty"`
	EventRegistrationDeadline *time.Time `gorm:"column:event_registration_deadline" json:"event_registration_deadline,omitempty"`

	EventIsPublished bool `gorm:"column:event_is_published;not null;default:false" json:"event_is_published"`

	EventCreatedAt time.Time  `gorm:"column:event_created_at;not null;default:CURRENT_TIMESTAMP" json:"event_created_at"`
	EventUpdatedAt *time.Time `gorm:"column:event_updated_at" json:"event_updated_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
