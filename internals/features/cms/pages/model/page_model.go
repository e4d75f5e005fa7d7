// file: internals/features/cms/pages/model/page_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Slugs may contain "/" so nested paths like about/history resolve to one
// page row.
type PageModel struct {
	PageID             uuid.UUID `gorm:"column:page_id;type:uuid;default:gen_random_uuid();primaryKey" json:"page_id"`
	PageOrganizationID uuid.UUID `gorm:"column:page_organization_id;type:uuid;not null;index:idx_pages_org_school_slug,unique" json:"page_organization_id"`
	PageSchoolID       uuid.UUID `gorm:"column:page_school_id;type:uuid;not null;index:idx_pages_org_school_slug,unique" json:"page_school_id"`
	PageSlug           string    `gorm:"column:page_slug;type:varchar(255);not null;index:idx_pages_org_school_slug,unique" json:"page_slug"`
	PageTitle          string    `gorm:"column:page_title;type:varchar(255);not null" json:"page_title"`
	PageContent        string    `gorm:"column:page_content;type:text" json:"page_content,omitempty"`
	PageMetaTitle      string    `gorm:"column:page_meta_title;type:varchar(255)" json:"page_meta_title,omitempty"`
	PageMetaDescription string   `gorm:"column:page_meta_description;type:text" json:"page_meta_description,omitempty"`
	PageIsPublished    bool      `gorm:"column:page_is_published;not null;default:false" json:"page_is_published"`
	PagePublishedAt    *time.Time `gorm:"column:page_published_at" json:"page_published_at,omitempty"`

	PageCreatedAt time.Time  `gorm:"column:page_created_at;not null;default:CURRENT_TIMESTAMP" json:"page_created_at"`
	PageUpdatedAt *time.Time `gorm:"column:page_updated_at" json:"page_updated_at,omitempty"`

	Sections []PageSectionModel `gorm:"foreignKey:SectionPageID;references:PageID" json:"sections,omitempty"`
}

func (PageModel) TableName() string { return "pages" }

// PageSectionModel is one ordered content block. The page link is optional:
// sections without a page are reusable global blocks (headers, footers,
// shared banners). The payload shape depends on the section type and stays
// opaque JSONB here.
type PageSectionModel struct {
	SectionID             uuid.UUID      `gorm:"column:section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"section_id"`
	SectionOrganizationID uuid.UUID      `gorm:"column:section_organization_id;type:uuid;not null;index:idx_sections_org_school_page_slug,unique" json:"section_organization_id"`
	SectionSchoolID       uuid.UUID      `gorm:"column:section_school_id;type:uuid;not null;index:idx_sections_org_school_page_slug,unique" json:"section_school_id"`
	SectionPageID         *uuid.UUID     `gorm:"column:section_page_id;type:uuid;index:idx_sections_org_school_page_slug,unique" json:"section_page_id,omitempty"`
	SectionSlug           string         `gorm:"column:section_slug;type:varchar(120);not null;index:idx_sections_org_school_page_slug,unique" json:"section_slug"`
	SectionType           string         `gorm:"column:section_type;type:varchar(30);not null;default:'richtext'" json:"section_type"`
	SectionTitle          string         `gorm:"column:section_title;type:varchar(255)" json:"section_title,omitempty"`
	SectionContent        datatypes.JSON `gorm:"column:section_content;type:jsonb" json:"section_content,omitempty"`
	SectionDisplayOrder   int            `gorm:"column:section_display_order;not null;default:0" json:"section_display_order"`
	SectionIsVisible      bool           `gorm:"column:section_is_visible;not null;default:true" json:"section_is_visible"`

	SectionCreatedAt time.Time  `gorm:"column:section_created_at;not null;default:CURRENT_TIMESTAMP" json:"section_created_at"`
	SectionUpdatedAt *time.Time `gorm:"column:section_updated_at" json:"section_updated_at,omitempty"`
}

func (PageSectionModel) TableName() string { return "page_sections" }
