// file: internals/features/cms/galleries/dto/gallery_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/cms/galleries/model"
)

type CreateGalleryRequest struct {
	Title       string     `json:"gallery_title" validate:"required,max=255"`
	Slug        string     `json:"gallery_slug" validate:"omitempty,max=120"`
	Description string     `json:"gallery_description" validate:"omitempty"`
	CoverURL    *string    `json:"gallery_cover_url" validate:"omitempty,url"`
	IsPublished bool       `json:"gallery_is_published"`
	EventID     *uuid.UUID `json:"gallery_event_id"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"gallery_title" validate:"omitempty,max=255"`
	Description *string `json:"gallery_description" validate:"omitempty"`
	CoverURL    *string `json:"gallery_cover_url" validate:"omitempty,url"`
	IsPublished *bool   `json:"gallery_is_published" validate:"omitempty"`
}

type AddImageRequest struct {
	URL          string  `json:"image_url" validate:"required,url"`
	ThumbnailURL *string `json:"image_thumbnail_url" validate:"omitempty,url"`
	Caption      string  `json:"image_caption" validate:"omitempty,max=255"`
	DisplayOrder int     `json:"image_display_order" validate:"omitempty,gte=0"`
}

func (r CreateGalleryRequest) ToModel() model.GalleryModel {
	return model.GalleryModel{
		GalleryTitle:       strings.TrimSpace(r.Title),
		GallerySlug:        strings.TrimSpace(r.Slug),
		GalleryDescription: strings.TrimSpace(r.Description),
		GalleryCoverURL:    r.CoverURL,
		GalleryIsPublished: r.IsPublished,
		GalleryEventID:     r.EventID,
	}
}

func (r AddImageRequest) ToModel() model.GalleryImageModel {
	return model.GalleryImageModel{
		ImageURL:          strings.TrimSpace(r.URL),
		ImageThumbnailURL: r.ThumbnailURL,
		ImageCaption:      strings.TrimSpace(r.Caption),
		ImageDisplayOrder: r.DisplayOrder,
	}
}
