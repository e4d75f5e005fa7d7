// file: internals/features/communications/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Invariant: notification_read_at is null exactly when notification_is_read
// is false. Both flip together in one UPDATE.
type NotificationModel struct {
	NotificationID             uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationOrganizationID uuid.UUID `gorm:"column:notification_organization_id;type:uuid;not null;index" json:"notification_organization_id"`
	NotificationProfileID      uuid.UUID `gorm:"column:notification_profile_id;type:uuid;not null;index" json:"notification_profile_id"`
	NotificationType           string    `gorm:"column:notification_type;type:varchar(50);not null;default:'general'" json:"notification_type"`
	NotificationTitle          string    `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody           string    `gorm:"column:notification_body;type:text" json:"notification_body,omitempty"`
	NotificationLink           *string   `gorm:"column:notification_link;type:text" json:"notification_link,omitempty"`

	NotificationIsRead bool       `gorm:"column:notification_is_read;not null;default:false;index" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;default:CURRENT_TIMESTAMP" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
