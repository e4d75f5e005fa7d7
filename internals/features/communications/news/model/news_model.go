// file: internals/features/communications/news/model/news_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NewsModel struct {
	NewsID             uuid.UUID `gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey" json:"news_id"`
	NewsOrganizationID uuid.UUID `gorm:"column:news_organization_id;type:uuid;not null;index:idx_news_org_school_slug,unique" json:"news_organization_id"`
	NewsSchoolID       uuid.UUID `gorm:"column:news_school_id;type:uuid;not null;index:idx_news_org_school_slug,unique" json:"news_school_id"`
	NewsSlug           string    `gorm:"column:news_slug;type:varchar(160);not null;index:idx_news_org_school_slug,unique" json:"news_slug"`
	NewsTitle          string    `gorm:"column:news_title;type:varchar(255);not null" json:"news_title"`
	NewsSummary        string    `gorm:"column:news_summary;type:text" json:"news_summary,omitempty"`
	NewsContent        string    `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsCoverURL       *string   `gorm:"column:news_cover_url;type:text" json:"news_cover_url,omitempty"`
	NewsIsPublished    bool      `gorm:"column:news_is_published;not null;default:false" json:"news_is_published"`
	NewsIsFeatured     bool      `gorm:"column:news_is_featured;not null;default:false" json:"news_is_featured"`

	// Editorial date shown on the site; decoupled from the publish toggle.
	NewsPublishedDate *time.Time `gorm:"column:news_published_date" json:"news_published_date,omitempty"`
	NewsViewsCount    int64      `gorm:"column:news_views_count;not null;default:0" json:"news_views_count"`

	NewsAuthorID *uuid.UUID `gorm:"column:news_author_id;type:uuid" json:"news_author_id,omitempty"`

	NewsCreatedAt time.Time  `gorm:"column:news_created_at;not null;default:CURRENT_TIMESTAMP" json:"news_created_at"`
	NewsUpdatedAt *time.Time `gorm:"column:news_updated_at" json:"news_updated_at,omitempty"`
}

func (NewsModel) TableName() string { return "news" }
