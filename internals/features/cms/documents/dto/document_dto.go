// file: internals/features/cms/documents/dto/document_dto.go
package dto

import (
	"strings"

	"schoolhub_backend/internals/features/cms/documents/model"
)

type CreateDocumentRequest struct {
	Title         string `json:"document_title" validate:"required,max=255"`
	Description   string `json:"document_description" validate:"omitempty"`
	FileURL       string `json:"document_file_url" validate:"required,url"`
	FileName      string `json:"document_file_name" validate:"required,max=255"`
	FileSizeBytes int64  `json:"document_file_size_bytes" validate:"omitempty,gte=0"`
	MimeType      string `json:"document_mime_type" validate:"omitempty,max=100"`
	Category      string `json:"document_category" validate:"omitempty,max=50"`
	IsPublic      bool   `json:"document_is_public"`
}

type UpdateDocumentRequest struct {
	Title       *string `json:"document_title" validate:"omitempty,max=255"`
	Description *string `json:"document_description" validate:"omitempty"`
	Category    *string `json:"document_category" validate:"omitempty,max=50"`
	IsPublic    *bool   `json:"document_is_public" validate:"omitempty"`
}

func (r CreateDocumentRequest) ToModel() model.DocumentModel {
	return model.DocumentModel{
		DocumentTitle:         strings.TrimSpace(r.Title),
		DocumentDescription:   strings.TrimSpace(r.Description),
		DocumentFileURL:       strings.TrimSpace(r.FileURL),
		DocumentFileName:      strings.TrimSpace(r.FileName),
		DocumentFileSizeBytes: r.FileSizeBytes,
		DocumentMimeType:      strings.TrimSpace(r.MimeType),
		DocumentCategory:      strings.TrimSpace(strings.ToLower(r.Category)),
		DocumentIsPublic:      r.IsPublic,
	}
}
