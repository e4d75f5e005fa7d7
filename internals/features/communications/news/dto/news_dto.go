// file: internals/features/communications/news/dto/news_dto.go
package dto

import (
	"strings"
	"time"

	"schoolhub_backend/internals/features/communications/news/model"
)

type CreateNewsRequest struct {
	Title         string     `json:"news_title" validate:"required,max=255"`
	Slug          string     `json:"news_slug" validate:"omitempty,max=160"`
	Summary       string     `json:"news_summary" validate:"omitempty"`
	Content       string     `json:"news_content" validate:"required"`
	CoverURL      *string    `json:"news_cover_url" validate:"omitempty,url"`
	IsPublished   bool       `json:"news_is_published"`
	IsFeatured    bool       `json:"news_is_featured"`
	PublishedDate *time.Time `json:"news_published_date"`
}

type UpdateNewsRequest struct {
	Title         *string    `json:"news_title" validate:"omitempty,max=255"`
	Summary       *string    `json:"news_summary" validate:"omitempty"`
	Content       *string    `json:"news_content" validate:"omitempty"`
	CoverURL      *string    `json:"news_cover_url" validate:"omitempty,url"`
	IsPublished   *bool      `json:"news_is_published" validate:"omitempty"`
	IsFeatured    *bool      `json:"news_is_featured" validate:"omitempty"`
	PublishedDate *time.Time `json:"news_published_date"`
}

func (r CreateNewsRequest) ToModel() model.NewsModel {
	return model.NewsModel{
		NewsTitle:         strings.TrimSpace(r.Title),
		NewsSlug:          strings.TrimSpace(r.Slug),
		NewsSummary:       strings.TrimSpace(r.Summary),
		NewsContent:       r.Content,
		NewsCoverURL:      r.CoverURL,
		NewsIsPublished:   r.IsPublished,
		NewsIsFeatured:    r.IsFeatured,
		NewsPublishedDate: r.PublishedDate,
	}
}
