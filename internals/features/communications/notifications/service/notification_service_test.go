package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolhub_backend/internals/features/communications/notifications/model"
)

func newNotifDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(`CREATE TABLE notifications (
		notification_id TEXT PRIMARY KEY,
		notification_organization_id TEXT NOT NULL,
		notification_profile_id TEXT NOT NULL,
		notification_type TEXT NOT NULL DEFAULT 'general',
		notification_title TEXT NOT NULL,
		notification_body TEXT,
		notification_link TEXT,
		notification_is_read INTEGER NOT NULL DEFAULT 0,
		notification_read_at DATETIME,
		notification_created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`).Error; err != nil {
		t.Fatalf("ddl: %v", err)
	}
	return db
}

func notifFor(t *testing.T, db *gorm.DB, orgID, profileID uuid.UUID) uuid.UUID {
	t.Helper()
	ent := model.NotificationModel{
		NotificationID:             uuid.New(),
		NotificationOrganizationID: orgID,
		NotificationProfileID:      profileID,
		NotificationType:           "general",
		NotificationTitle:          "hello",
	}
	if err := db.Create(&ent).Error; err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return ent.NotificationID
}

func TestNotifyManyFansOut(t *testing.T) {
	db := newNotifDB(t)
	orgID := uuid.New()
	targets := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	if err := NotifyMany(db, orgID, targets, "announcement", "Exam week", "Schedule attached", nil); err != nil {
		t.Fatalf("NotifyMany: %v", err)
	}

	for _, pid := range targets {
		var n int64
		if err := db.Model(&model.NotificationModel{}).
			Where("notification_profile_id = ? AND notification_is_read = ?", pid, false).
			Count(&n).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 1 {
			t.Errorf("profile %s has %d notifications, want 1", pid, n)
		}
	}

	if err := NotifyMany(db, orgID, nil, "announcement", "empty", "", nil); err != nil {
		t.Errorf("NotifyMany with no targets: %v", err)
	}
}

func TestMarkReadScopedToProfile(t *testing.T) {
	db := newNotifDB(t)
	orgID := uuid.New()
	mine, theirs := uuid.New(), uuid.New()
	id := notifFor(t, db, orgID, mine)

	// Another profile's id must behave like a missing row.
	if ok, err := MarkRead(db, theirs, id); err != nil || ok {
		t.Fatalf("MarkRead(other profile) = (%v, %v), want (false, nil)", ok, err)
	}

	ok, err := MarkRead(db, mine, id)
	if err != nil || !ok {
		t.Fatalf("MarkRead = (%v, %v), want (true, nil)", ok, err)
	}

	var got model.NotificationModel
	if err := db.First(&got, "notification_id = ?", id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.NotificationIsRead || got.NotificationReadAt == nil {
		t.Error("read flag and read_at must both be set")
	}

	// Second mark is a no-op.
	if ok, err := MarkRead(db, mine, id); err != nil || ok {
		t.Fatalf("second MarkRead = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestMarkAllRead(t *testing.T) {
	db := newNotifDB(t)
	orgID := uuid.New()
	mine, theirs := uuid.New(), uuid.New()
	notifFor(t, db, orgID, mine)
	notifFor(t, db, orgID, mine)
	notifFor(t, db, orgID, theirs)

	n, err := MarkAllRead(db, mine)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if n != 2 {
		t.Errorf("marked %d, want 2", n)
	}

	var unreadTheirs int64
	if err := db.Model(&model.NotificationModel{}).
		Where("notification_profile_id = ? AND notification_is_read = ?", theirs, false).
		Count(&unreadTheirs).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if unreadTheirs != 1 {
		t.Error("another profile's notifications were touched")
	}
}
