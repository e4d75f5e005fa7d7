// file: internals/features/cms/navigations/model/navigation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MenuTypePage     = "page"     // links to a CMS page
	MenuTypeSection  = "section"  // anchors to a section on a page
	MenuTypeDropdown = "dropdown" // container only, no link of its own
	MenuTypeExternal = "external" // absolute URL off-site
)

// Menu items form a tree per school. A reparent must never introduce a
// cycle; the controller walks the ancestor chain before accepting one.
type NavigationMenuModel struct {
	NavigationID             uuid.UUID  `gorm:"column:navigation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"navigation_id"`
	NavigationOrganizationID uuid.UUID  `gorm:"column:navigation_organization_id;type:uuid;not null;index:idx_navigations_slug_parent,unique" json:"navigation_organization_id"`
	NavigationSchoolID       uuid.UUID  `gorm:"column:navigation_school_id;type:uuid;not null;index:idx_navigations_slug_parent,unique" json:"navigation_school_id"`
	NavigationSlug           string     `gorm:"column:navigation_slug;type:varchar(120);not null;index:idx_navigations_slug_parent,unique" json:"navigation_slug"`
	NavigationParentID       *uuid.UUID `gorm:"column:navigation_parent_id;type:uuid;index:idx_navigations_slug_parent,unique" json:"navigation_parent_id,omitempty"`
	NavigationTitle          string     `gorm:"column:navigation_title;type:varchar(150);not null" json:"navigation_title"`
	NavigationMenuType       string     `gorm:"column:navigation_menu_type;type:varchar(20);not null;default:'page'" json:"navigation_menu_type"`
	NavigationURL            string     `gorm:"column:navigation_url;type:varchar(500)" json:"navigation_url,omitempty"`
	NavigationTarget         string     `gorm:"column:navigation_target;type:varchar(10);not null;default:'_self'" json:"navigation_target"`
	NavigationDisplayOrder   int        `gorm:"column:navigation_display_order;not null;default:0" json:"navigation_display_order"`
	NavigationIsVisible      bool       `gorm:"column:navigation_is_visible;not null;default:true" json:"navigation_is_visible"`

	NavigationCreatedAt time.Time  `gorm:"column:navigation_created_at;not null;default:CURRENT_TIMESTAMP" json:"navigation_created_at"`
	NavigationUpdatedAt *time.Time `gorm:"column:navigation_updated_at" json:"navigation_updated_at,omitempty"`
}

func (NavigationMenuModel) TableName() string { return "navigation_menus" }
