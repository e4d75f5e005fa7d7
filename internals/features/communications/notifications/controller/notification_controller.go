// file: internals/features/communications/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/communications/notifications/model"
	"schoolhub_backend/internals/features/communications/notifications/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (ctl *NotificationController) profileID(c *fiber.Ctx) (uuid.UUID, error) {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.ProfileID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No profile in scope")
	}
	return sc.ProfileID, nil
}

// ListMine lists the caller's notifications, unread first. ?unread=true
// filters to unread only.
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	pid, err := ctl.profileID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_profile_id = ?", pid)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_is_read ASC, notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var unread int64
	if err := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_profile_id = ? AND notification_is_read = ?", pid, false).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "ok",
		"data":         rows,
		"unread_count": unread,
		"pagination":   helper.BuildPagination(total, p.Page, p.PerPage),
	})
}

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	pid, err := ctl.profileID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	ok, serr := service.MarkRead(ctl.DB, pid, id)
	if serr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	if !ok {
		// Already read, someone else's, or missing: all look the same.
		var cnt int64
		if err := ctl.DB.Model(&model.NotificationModel{}).
			Where("notification_id = ? AND notification_profile_id = ?", id, pid).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
	}
	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	pid, err := ctl.profileID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	n, serr := service.MarkAllRead(ctl.DB, pid)
	if serr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": n})
}
