// file: internals/features/cms/pages/dto/page_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/cms/pages/model"
)

type CreatePageRequest struct {
	Title           string `json:"page_title" validate:"required,max=255"`
	Slug            string `json:"page_slug" validate:"omitempty,max=255"`
	Content         string `json:"page_content" validate:"omitempty"`
	MetaTitle       string `json:"page_meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"page_meta_description" validate:"omitempty"`
	IsPublished     bool   `json:"page_is_published"`
}

type UpdatePageRequest struct {
	Title           *string `json:"page_title" validate:"omitempty,max=255"`
	Content         *string `json:"page_content" validate:"omitempty"`
	MetaTitle       *string `json:"page_meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"page_meta_description" validate:"omitempty"`
	IsPublished     *bool   `json:"page_is_published" validate:"omitempty"`
}

type CreateSectionRequest struct {
	Slug         string         `json:"section_slug" validate:"omitempty,max=120"`
	Type         string         `json:"section_type" validate:"omitempty,oneof=richtext hero image_text cards faq embed"`
	Title        string         `json:"section_title" validate:"omitempty,max=255"`
	Content      datatypes.JSON `json:"section_content" validate:"omitempty"`
	DisplayOrder int            `json:"section_display_order" validate:"omitempty,gte=0"`
	IsVisible    *bool          `json:"section_is_visible" validate:"omitempty"`
}

type UpdateSectionRequest struct {
	Type         *string        `json:"section_type" validate:"omitempty,oneof=richtext hero image_text cards faq embed"`
	Title        *string        `json:"section_title" validate:"omitempty,max=255"`
	Content      datatypes.JSON `json:"section_content" validate:"omitempty"`
	DisplayOrder *int           `json:"section_display_order" validate:"omitempty,gte=0"`
	IsVisible    *bool          `json:"section_is_visible" validate:"omitempty"`
}

func (r CreatePageRequest) ToModel() model.PageModel {
	return model.PageModel{
		PageTitle:           strings.TrimSpace(r.Title),
		PageSlug:            strings.Trim(strings.TrimSpace(r.Slug), "/"),
		PageContent:         r.Content,
		PageMetaTitle:       strings.TrimSpace(r.MetaTitle),
		PageMetaDescription: strings.TrimSpace(r.MetaDescription),
		PageIsPublished:     r.IsPublished,
	}
}

func (r CreateSectionRequest) ToModel() model.PageSectionModel {
	typ := strings.TrimSpace(r.Type)
	if typ == "" {
		typ = "richtext"
	}
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}
	return model.PageSectionModel{
		SectionSlug:         strings.TrimSpace(r.Slug),
		SectionType:         typ,
		SectionTitle:        strings.TrimSpace(r.Title),
		SectionContent:      r.Content,
		SectionDisplayOrder: r.DisplayOrder,
		SectionIsVisible:    visible,
	}
}
