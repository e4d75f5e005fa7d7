// file: internals/features/cms/navigations/dto/navigation_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/cms/navigations/model"
)

type CreateNavigationRequest struct {
	Title        string     `json:"navigation_title" validate:"required,max=150"`
	Slug         string     `json:"navigation_slug" validate:"omitempty,max=120"`
	MenuType     string     `json:"navigation_menu_type" validate:"omitempty,oneof=page section dropdown external"`
	URL          string     `json:"navigation_url" validate:"omitempty,max=500"`
	Target       string     `json:"navigation_target" validate:"omitempty,oneof=_self _blank"`
	ParentID     *uuid.UUID `json:"navigation_parent_id" validate:"omitempty"`
	DisplayOrder int        `json:"navigation_display_order" validate:"omitempty,gte=0"`
	IsVisible    *bool      `json:"navigation_is_visible" validate:"omitempty"`
}

type UpdateNavigationRequest struct {
	Title        *string    `json:"navigation_title" validate:"omitempty,max=150"`
	MenuType     *string    `json:"navigation_menu_type" validate:"omitempty,oneof=page section dropdown external"`
	URL          *string    `json:"navigation_url" validate:"omitempty,max=500"`
	Target       *string    `json:"navigation_target" validate:"omitempty,oneof=_self _blank"`
	ParentID     *uuid.UUID `json:"navigation_parent_id" validate:"omitempty"`
	ClearParent  bool       `json:"navigation_clear_parent"`
	DisplayOrder *int       `json:"navigation_display_order" validate:"omitempty,gte=0"`
	IsVisible    *bool      `json:"navigation_is_visible" validate:"omitempty"`
}

func (r CreateNavigationRequest) ToModel() model.NavigationMenuModel {
	target := r.Target
	if target == "" {
		target = "_self"
	}
	menuType := r.MenuType
	if menuType == "" {
		menuType = model.MenuTypePage
	}
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}
	return model.NavigationMenuModel{
		NavigationTitle:        strings.TrimSpace(r.Title),
		NavigationSlug:         strings.TrimSpace(r.Slug),
		NavigationMenuType:     menuType,
		NavigationURL:          strings.TrimSpace(r.URL),
		NavigationTarget:       target,
		NavigationParentID:     r.ParentID,
		NavigationDisplayOrder: r.DisplayOrder,
		NavigationIsVisible:    visible,
	}
}
