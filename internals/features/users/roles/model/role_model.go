// file: internals/features/users/roles/model/role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoleModel is per-organization. role_permissions is a flat capability map
// ({"users.manage": true, ...}); guards consult it through the resolved
// scope, never by re-reading this row per request.
type RoleModel struct {
	RoleID             uuid.UUID      `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleOrganizationID uuid.UUID      `gorm:"column:role_organization_id;type:uuid;not null;index:idx_roles_org_slug,unique" json:"role_organization_id"`
	RoleName           string         `gorm:"column:role_name;type:varchar(100);not null" json:"role_name"`
	RoleSlug           string         `gorm:"column:role_slug;type:varchar(60);not null;index:idx_roles_org_slug,unique" json:"role_slug"`
	RoleDescription    string         `gorm:"column:role_description;type:text" json:"role_description,omitempty"`
	RolePermissions    datatypes.JSON `gorm:"column:role_permissions;type:jsonb" json:"role_permissions,omitempty"`
	RoleIsSystem       bool           `gorm:"column:role_is_system;not null;default:false" json:"role_is_system"`

	RoleCreatedAt time.Time  `gorm:"column:role_created_at;not null;default:CURRENT_TIMESTAMP" json:"role_created_at"`
	RoleUpdatedAt *time.Time `gorm:"column:role_updated_at" json:"role_updated_at,omitempty"`
}

func (RoleModel) TableName() string { return "roles" }
