// file: internals/features/cms/galleries/model/gallery_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type GalleryModel struct {
	GalleryID             uuid.UUID `gorm:"column:gallery_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gallery_id"`
	GalleryOrganizationID uuid.UUID `gorm:"column:gallery_organization_id;type:uuid;not null;index:idx_galleries_org_school_slug,unique" json:"gallery_organization_id"`
	GallerySchoolID       uuid.UUID `gorm:"column:gallery_school_id;type:uuid;not null;index:idx_galleries_org_school_slug,unique" json:"gallery_school_id"`
	GallerySlug           string    `gorm:"column:gallery_slug;type:varchar(120);not null;index:idx_galleries_org_school_slug,unique" json:"gallery_slug"`
	GalleryTitle          string    `gorm:"column:gallery_title;type:varchar(255);not null" json:"gallery_title"`
	GalleryDescription    string    `gorm:"column:gallery_description;type:text" json:"gallery_description,omitempty"`
	GalleryCoverURL       *string   `gorm:"column:gallery_cover_url;type:text" json:"gallery_cover_url,omitempty"`
	GalleryIsPublished    bool      `gorm:"column:gallery_is_published;not null;default:false" json:"gallery_is_published"`

	// Optional link back to the event the album documents.
	GalleryEventID   *uuid.UUID `gorm:"column:gallery_event_id;type:uuid;index" json:"gallery_event_id,omitempty"`
	GalleryCreatedBy *uuid.UUID `gorm:"column:gallery_created_by;type:uuid" json:"gallery_created_by,omitempty"`

	GalleryCreatedAt time.Time  `gorm:"column:gallery_created_at;not null;default:CURRENT_TIMESTAMP" json:"gallery_created_at"`
	GalleryUpdatedAt *time.Time `gorm:"column:gallery_updated_at" json:"gallery_updated_at,omitempty"`

	Images []GalleryImageModel `gorm:"foreignKey:ImageGalleryID;references:GalleryID" json:"images,omitempty"`
}

func (GalleryModel) TableName() string { return "galleries" }

// Images are URL metadata only; binary storage lives outside this service.
type GalleryImageModel struct {
	ImageID           uuid.UUID `gorm:"column:image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"image_id"`
	ImageGalleryID    uuid.UUID `gorm:"column:image_gallery_id;type:uuid;not null;index" json:"image_gallery_id"`
	ImageURL          string    `gorm:"column:image_url;type:text;not null" json:"image_url"`
	ImageThumbnailURL *string   `gorm:"column:image_thumbnail_url;type:text" json:"image_thumbnail_url,omitempty"`
	ImageCaption      string    `gorm:"column:image_caption;type:varchar(255)" json:"image_caption,omitempty"`
	ImageDisplayOrder int       `gorm:"column:image_display_order;not null;default:0" json:"image_display_order"`

	ImageCreatedAt time.Time `gorm:"column:image_created_at;not null;default:CURRENT_TIMESTAMP" json:"image_created_at"`
}

func (GalleryImageModel) TableName() string { return "gallery_images" }
