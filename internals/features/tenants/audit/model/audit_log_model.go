// file: internals/features/tenants/audit/model/audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is append-only: no update or delete path exists anywhere in
// the codebase, and none may be added.
type AuditLogModel struct {
	AuditLogID             uuid.UUID      `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	AuditLogOrganizationID uuid.UUID      `gorm:"column:audit_log_organization_id;type:uuid;not null;index:idx_audit_org_created" json:"audit_log_organization_id"`
	AuditLogUserID         *uuid.UUID     `gorm:"column:audit_log_user_id;type:uuid;index" json:"audit_log_user_id,omitempty"`
	AuditLogAction         string         `gorm:"column:audit_log_action;type:varchar(50);not null" json:"audit_log_action"`
	AuditLogModelName      string         `gorm:"column:audit_log_model_name;type:varchar(100);not null;index:idx_audit_model_object" json:"audit_log_model_name"`
	AuditLogObjectID       uuid.UUID      `gorm:"column:audit_log_object_id;type:uuid;not null;index:idx_audit_model_object" json:"audit_log_object_id"`
	AuditLogChanges        datatypes.JSON `gorm:"column:audit_log_changes;type:jsonb" json:"audit_log_changes,omitempty"`
	AuditLogIPAddress      *string        `gorm:"column:audit_log_ip_address;type:inet" json:"audit_log_ip_address,omitempty"`
	AuditLogUserAgent      string         `gorm:"column:audit_log_user_agent;type:text" json:"audit_log_user_agent,omitempty"`
	AuditLogCreatedAt      time.Time      `gorm:"column:audit_log_created_at;not null;default:CURRENT_TIMESTAMP;index:idx_audit_org_created" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
