// file: internals/features/users/roles/dto/role_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/users/roles/model"
)

type CreateRoleRequest struct {
	Name        string         `json:"role_name" validate:"required,max=100"`
	Slug        string         `json:"role_slug" validate:"omitempty,max=60"`
	Description string         `json:"role_description" validate:"omitempty"`
	Permissions datatypes.JSON `json:"role_permissions" validate:"omitempty"`
}

type UpdateRoleRequest struct {
	Name        *string         `json:"role_name" validate:"omitempty,max=100"`
	Description *string         `json:"role_description" validate:"omitempty"`
	Permissions *datatypes.JSON `json:"role_permissions" validate:"omitempty"`
}

func (r CreateRoleRequest) ToModel() model.RoleModel {
	return model.RoleModel{
		RoleName:        strings.TrimSpace(r.Name),
		RoleSlug:        strings.TrimSpace(strings.ToLower(r.Slug)),
		RoleDescription: strings.TrimSpace(r.Description),
		RolePermissions: r.Permissions,
	}
}

func (r UpdateRoleRequest) Apply(m *model.RoleModel) {
	if r.Name != nil {
		m.RoleName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.RoleDescription = strings.TrimSpace(*r.Description)
	}
	if r.Permissions != nil {
		m.RolePermissions = *r.Permissions
	}
}
