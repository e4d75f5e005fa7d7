// file: internals/features/cms/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Documents are downloadable file metadata (prospectus, forms, circulars).
// The counter is bumped atomically on each public download.
type DocumentModel struct {
	DocumentID             uuid.UUID `gorm:"column:document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"document_id"`
	DocumentOrganizationID uuid.UUID `gorm:"column:document_organization_id;type:uuid;not null;index" json:"document_organization_id"`
	DocumentSchoolID       uuid.UUID `gorm:"column:document_school_id;type:uuid;not null;index" json:"document_school_id"`
	DocumentTitle          string    `gorm:"column:document_title;type:varchar(255);not null" json:"document_title"`
	DocumentDescription    string    `gorm:"column:document_description;type:text" json:"document_description,omitempty"`
	DocumentFileURL        string    `gorm:"column:document_file_url;type:text;not null" json:"document_file_url"`
	DocumentFileName       string    `gorm:"column:document_file_name;type:varchar(255);not null" json:"document_file_name"`
	DocumentFileSizeBytes  int64     `gorm:"column:document_file_size_bytes;not null;default:0" json:"document_file_size_bytes"`
	DocumentMimeType       string    `gorm:"column:document_mime_type;type:varchar(100)" json:"document_mime_type,omitempty"`
	DocumentCategory       string    `gorm:"column:document_category;type:varchar(50)" json:"document_category,omitempty"`
	DocumentIsPublic       bool      `gorm:"column:document_is_public;not null;default:false" json:"document_is_public"`
	DocumentDownloadCount  int64     `gorm:"column:document_download_count;not null;default:0" json:"document_download_count"`

	DocumentCreatedAt time.Time  `gorm:"column:document_created_at;not null;default:CURRENT_TIMESTAMP" json:"document_created_at"`
	DocumentUpdatedAt *time.Time `gorm:"column:document_updated_at" json:"document_updated_at,omitempty"`
}

func (DocumentModel) TableName() string { return "documents" }
