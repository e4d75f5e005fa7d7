// file: internals/features/communications/announcements/dto/announcement_dto.go
package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/communications/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title          string         `json:"announcement_title" validate:"required,max=255"`
	Content        string         `json:"announcement_content" validate:"required"`
	Priority       string         `json:"announcement_priority" validate:"omitempty,oneof=low normal high urgent"`
	TargetAudience datatypes.JSON `json:"announcement_target_audience"`
	IsPublished    bool           `json:"announcement_is_published"`
	PublishedDate  *time.Time     `json:"announcement_published_date"`
	ExpiryDate     *time.Time     `json:"announcement_expiry_date"`
}

type UpdateAnnouncementRequest struct {
	Title          *string        `json:"announcement_title" validate:"omitempty,max=255"`
	Content        *string        `json:"announcement_content" validate:"omitempty"`
	Priority       *string        `json:"announcement_priority" validate:"omitempty,oneof=low normal high urgent"`
	TargetAudience datatypes.JSON `json:"announcement_target_audience"`
	IsPublished    *bool          `json:"announcement_is_published" validate:"omitempty"`
	PublishedDate  *time.Time     `json:"announcement_published_date"`
	ExpiryDate     *time.Time     `json:"announcement_expiry_date"`
}

func (r CreateAnnouncementRequest) ToModel() model.AnnouncementModel {
	prio := strings.TrimSpace(strings.ToLower(r.Priority))
	if prio == "" {
		prio = model.PriorityNormal
	}
	return model.AnnouncementModel{
		AnnouncementTitle:          strings.TrimSpace(r.Title),
		AnnouncementContent:        r.Content,
		AnnouncementPriority:       prio,
		AnnouncementTargetAudience: r.TargetAudience,
		AnnouncementIsPublished:    r.IsPublished,
		AnnouncementPublishedDate:  r.PublishedDate,
		AnnouncementExpiryDate:     r.ExpiryDate,
	}
}
