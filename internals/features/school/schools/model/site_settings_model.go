// file: internals/features/school/schools/model/site_settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	LayoutStyleBoxed = "boxed"
	LayoutStyleFluid = "fluid"
	LayoutStyleWide  = "wide"
)

// ThemeConfigModel holds the public site's branding, one row per school.
type ThemeConfigModel struct {
	ThemeID             uuid.UUID `gorm:"column:theme_id;type:uuid;default:gen_random_uuid();primaryKey" json:"theme_id"`
	ThemeOrganizationID uuid.UUID `gorm:"column:theme_organization_id;type:uuid;not null;index" json:"theme_organization_id"`
	ThemeSchoolID       uuid.UUID `gorm:"column:theme_school_id;type:uuid;not null;uniqueIndex" json:"theme_school_id"`

	ThemePrimaryColor     string `gorm:"column:theme_primary_color;type:char(7);not null;default:'#1e3a8a'" json:"theme_primary_color"`
	ThemeSecondaryColor   string `gorm:"column:theme_secondary_color;type:char(7);not null;default:'#64748b'" json:"theme_secondary_color"`
	ThemeAccentColor      string `gorm:"column:theme_accent_color;type:char(7);not null;default:'#3b82f6'" json:"theme_accent_color"`
	ThemeSuccessColor     string `gorm:"column:theme_success_color;type:char(7);not null;default:'#10b981'" json:"theme_success_color"`
	ThemeWarningColor     string `gorm:"column:theme_warning_color;type:char(7);not null;default:'#f59e0b'" json:"theme_warning_color"`
	ThemeDestructiveColor string `gorm:"column:theme_destructive_color;type:char(7);not null;default:'#ef4444'" json:"theme_destructive_color"`
	ThemeBackgroundColor  string `gorm:"column:theme_background_color;type:char(7);not null;default:'#ffffff'" json:"theme_background_color"`
	ThemeForegroundColor  string `gorm:"column:theme_foreground_color;type:char(7);not null;default:'#0f172a'" json:"theme_foreground_color"`

	ThemeFontFamily  string `gorm:"column:theme_font_family;type:varchar(100);not null;default:'Inter'" json:"theme_font_family"`
	ThemeHeadingFont string `gorm:"column:theme_heading_font;type:varchar(100)" json:"theme_heading_font,omitempty"`

	ThemeLayoutStyle string `gorm:"column:theme_layout_style;type:varchar(20);not null;default:'fluid'" json:"theme_layout_style"`

	ThemeCustomCSS string         `gorm:"column:theme_custom_css;type:text" json:"theme_custom_css,omitempty"`
	ThemeSettings  datatypes.JSON `gorm:"column:theme_settings;type:jsonb" json:"theme_settings,omitempty"`

	ThemeCreatedAt time.Time  `gorm:"column:theme_created_at;not null;default:CURRENT_TIMESTAMP" json:"theme_created_at"`
	ThemeUpdatedAt *time.Time `gorm:"column:theme_updated_at" json:"theme_updated_at,omitempty"`
}

func (ThemeConfigModel) TableName() string { return "theme_configs" }

// DefaultTheme returns the row the first read materializes before any admin
// customization.
func DefaultTheme(orgID, schoolID uuid.UUID) ThemeConfigModel {
	return ThemeConfigModel{
		ThemeOrganizationID:   orgID,
		ThemeSchoolID:         schoolID,
		ThemePrimaryColor:     "#1e3a8a",
		ThemeSecondaryColor:   "#64748b",
		ThemeAccentColor:      "#3b82f6",
		ThemeSuccessColor:     "#10b981",
		ThemeWarningColor:     "#f59e0b",
		ThemeDestructiveColor: "#ef4444",
		ThemeBackgroundColor:  "#ffffff",
		ThemeForegroundColor:  "#0f172a",
		ThemeFontFamily:       "Inter",
		ThemeLayoutStyle:      LayoutStyleFluid,
	}
}

// SocialLinksModel is the school's social media card, one row per school.
type SocialLinksModel struct {
	SocialID             uuid.UUID `gorm:"column:social_id;type:uuid;default:gen_random_uuid();primaryKey" json:"social_id"`
	SocialOrganizationID uuid.UUID `gorm:"column:social_organization_id;type:uuid;not null;index" json:"social_organization_id"`
	SocialSchoolID       uuid.UUID `gorm:"column:social_school_id;type:uuid;not null;uniqueIndex" json:"social_school_id"`

	SocialFacebook  string `gorm:"column:social_facebook;type:varchar(255)" json:"social_facebook,omitempty"`
	SocialTwitter   string `gorm:"column:social_twitter;type:varchar(255)" json:"social_twitter,omitempty"`
	SocialInstagram string `gorm:"column:social_instagram;type:varchar(255)" json:"social_instagram,omitempty"`
	SocialLinkedin  string `gorm:"column:social_linkedin;type:varchar(255)" json:"social_linkedin,omitempty"`
	SocialYoutube   string `gorm:"column:social_youtube;type:varchar(255)" json:"social_youtube,omitempty"`
	SocialWhatsapp  string `gorm:"column:social_whatsapp;type:varchar(20)" json:"social_whatsapp,omitempty"`

	SocialAdditionalLinks datatypes.JSON `gorm:"column:social_additional_links;type:jsonb" json:"social_additional_links,omitempty"`

	SocialCreatedAt time.Time  `gorm:"column:social_created_at;not null;default:CURRENT_TIMESTAMP" json:"social_created_at"`
	SocialUpdatedAt *time.Time `gorm:"column:social_updated_at" json:"social_updated_at,omitempty"`
}

func (SocialLinksModel) TableName() string { return "social_links" }
