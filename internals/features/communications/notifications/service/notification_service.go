// file: internals/features/communications/notifications/service/notification_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/notifications/model"
)

// Notify inserts a notification for one profile. Callers run it inside their
// own transaction when the notification must commit with the triggering write.
func Notify(db *gorm.DB, orgID, profileID uuid.UUID, typ, title, body string, link *string) error {
	if typ == "" {
		typ = "general"
	}
	ent := model.NotificationModel{
		NotificationOrganizationID: orgID,
		NotificationProfileID:      profileID,
		NotificationType:           typ,
		NotificationTitle:          title,
		NotificationBody:           body,
		NotificationLink:           link,
	}
	return db.Create(&ent).Error
}

// NotifyMany fans one message out to a set of profiles in a single insert.
func NotifyMany(db *gorm.DB, orgID uuid.UUID, profileIDs []uuid.UUID, typ, title, body string, link *string) error {
	if len(profileIDs) == 0 {
		return nil
	}
	if typ == "" {
		typ = "general"
	}
	rows := make([]model.NotificationModel, 0, len(profileIDs))
	for _, pid := range profileIDs {
		rows = append(rows, model.NotificationModel{
			NotificationOrganizationID: orgID,
			NotificationProfileID:      pid,
			NotificationType:           typ,
			NotificationTitle:          title,
			NotificationBody:           body,
			NotificationLink:           link,
		})
	}
	return db.Create(&rows).Error
}

// MarkRead flips one notification to read. The profile filter makes another
// profile's notification indistinguishable from a missing one.
func MarkRead(db *gorm.DB, profileID, notificationID uuid.UUID) (bool, error) {
	now := time.Now()
	res := db.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_profile_id = ? AND notification_is_read = ?",
			notificationID, profileID, false).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkAllRead flips every unread notification of the profile; returns how many.
func MarkAllRead(db *gorm.DB, profileID uuid.UUID) (int64, error) {
	now := time.Now()
	res := db.Model(&model.NotificationModel{}).
		Where("notification_profile_id = ? AND notification_is_read = ?", profileID, false).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	return res.RowsAffected, res.Error
}
