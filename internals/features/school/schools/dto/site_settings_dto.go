// file: internals/features/school/schools/dto/site_settings_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"schoolhub_backend/internals/features/school/schools/model"
)

// UpdateThemeRequest patches the school's theme row; every field optional.
type UpdateThemeRequest struct {
	PrimaryColor     *string `json:"theme_primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor   *string `json:"theme_secondary_color" validate:"omitempty,hexcolor"`
	AccentColor      *string `json:"theme_accent_color" validate:"omitempty,hexcolor"`
	SuccessColor     *string `json:"theme_success_color" validate:"omitempty,hexcolor"`
	WarningColor     *string `json:"theme_warning_color" validate:"omitempty,hexcolor"`
	DestructiveColor *string `json:"theme_destructive_color" validate:"omitempty,hexcolor"`
	BackgroundColor  *string `json:"theme_background_color" validate:"omitempty,hexcolor"`
	ForegroundColor  *string `json:"theme_foreground_color" validate:"omitempty,hexcolor"`

	FontFamily  *string `json:"theme_font_family" validate:"omitempty,max=100"`
	HeadingFont *string `json:"theme_heading_font" validate:"omitempty,max=100"`

	LayoutStyle *string `json:"theme_layout_style" validate:"omitempty,oneof=boxed fluid wide"`

	CustomCSS *string         `json:"theme_custom_css" validate:"omitempty"`
	Settings  *datatypes.JSON `json:"theme_settings" validate:"omitempty"`
}

func (r UpdateThemeRequest) Apply(m *model.ThemeConfigModel) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&m.ThemePrimaryColor, r.PrimaryColor)
	set(&m.ThemeSecondaryColor, r.SecondaryColor)
	set(&m.ThemeAccentColor, r.AccentColor)
	set(&m.ThemeSuccessColor, r.SuccessColor)
	set(&m.ThemeWarningColor, r.WarningColor)
	set(&m.ThemeDestructiveColor, r.DestructiveColor)
	set(&m.ThemeBackgroundColor, r.BackgroundColor)
	set(&m.ThemeForegroundColor, r.ForegroundColor)
	set(&m.ThemeFontFamily, r.FontFamily)
	set(&m.ThemeHeadingFont, r.HeadingFont)
	if r.LayoutStyle != nil {
		m.ThemeLayoutStyle = strings.ToLower(strings.TrimSpace(*r.LayoutStyle))
	}
	if r.CustomCSS != nil {
		m.ThemeCustomCSS = *r.CustomCSS
	}
	if r.Settings != nil {
		m.ThemeSettings = *r.Settings
	}
}

// UpdateSocialLinksRequest patches the school's social card.
type UpdateSocialLinksRequest struct {
	Facebook  *string `json:"social_facebook" validate:"omitempty,url,max=255"`
	Twitter   *string `json:"social_twitter" validate:"omitempty,url,max=255"`
	Instagram *string `json:"social_instagram" validate:"omitempty,url,max=255"`
	Linkedin  *string `json:"social_linkedin" validate:"omitempty,url,max=255"`
	Youtube   *string `json:"social_youtube" validate:"omitempty,url,max=255"`
	Whatsapp  *string `json:"social_whatsapp" validate:"omitempty,max=20"`

	AdditionalLinks *datatypes.JSON `json:"social_additional_links" validate:"omitempty"`
}

func (r UpdateSocialLinksRequest) Apply(m *model.SocialLinksModel) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&m.SocialFacebook, r.Facebook)
	set(&m.SocialTwitter, r.Twitter)
	set(&m.SocialInstagram, r.Instagram)
	set(&m.SocialLinkedin, r.Linkedin)
	set(&m.SocialYoutube, r.Youtube)
	set(&m.SocialWhatsapp, r.Whatsapp)
	if r.AdditionalLinks != nil {
		m.SocialAdditionalLinks = *r.AdditionalLinks
	}
}
