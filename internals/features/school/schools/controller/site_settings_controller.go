// file: internals/features/school/schools/controller/site_settings_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/schools/dto"
	"schoolhub_backend/internals/features/school/schools/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// SiteSettingsController manages the per-school theme and social links the
// public site renders with.
type SiteSettingsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSiteSettingsController(db *gorm.DB) *SiteSettingsController {
	return &SiteSettingsController{DB: db, Validator: validator.New()}
}

func (ctl *SiteSettingsController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if sc.OrganizationID == uuid.Nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No organization in scope")
	}
	if sc.SchoolID != nil {
		return sc.OrganizationID, *sc.SchoolID, nil
	}
	schoolID, err := helper.SchoolIDForOrg(ctl.DB, sc.OrganizationID)
	return sc.OrganizationID, schoolID, err
}

// loadTheme materializes the default row on first read so PUT is always a
// plain update and the public site always has a theme to render.
func (ctl *SiteSettingsController) loadTheme(orgID, schoolID uuid.UUID) (model.ThemeConfigModel, error) {
	var ent model.ThemeConfigModel
	err := ctl.DB.First(&ent, "theme_school_id = ?", schoolID).Error
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ent, err
	}
	ent = model.DefaultTheme(orgID, schoolID)
	if cerr := ctl.DB.Create(&ent).Error; cerr != nil {
		if helper.IsUniqueViolation(cerr) {
			err = ctl.DB.First(&ent, "theme_school_id = ?", schoolID).Error
			return ent, err
		}
		return ent, cerr
	}
	return ent, nil
}

func (ctl *SiteSettingsController) loadSocial(orgID, schoolID uuid.UUID) (model.SocialLinksModel, error) {
	var ent model.SocialLinksModel
	err := ctl.DB.First(&ent, "social_school_id = ?", schoolID).Error
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ent, err
	}
	ent = model.SocialLinksModel{SocialOrganizationID: orgID, SocialSchoolID: schoolID}
	if cerr := ctl.DB.Create(&ent).Error; cerr != nil {
		if helper.IsUniqueViolation(cerr) {
			err = ctl.DB.First(&ent, "social_school_id = ?", schoolID).Error
			return ent, err
		}
		return ent, cerr
	}
	return ent, nil
}

func (ctl *SiteSettingsController) GetTheme(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ent, lerr := ctl.loadTheme(orgID, schoolID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *SiteSettingsController) UpdateTheme(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.UpdateThemeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent, lerr := ctl.loadTheme(orgID, schoolID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	before := themeSnapshot(&ent)
	body.Apply(&ent)
	now := time.Now()
	ent.ThemeUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.LogUpdate(ctl.DB, c, "theme_config", ent.ThemeID, before, themeSnapshot(&ent))
	return helper.JsonUpdated(c, "Theme updated", ent)
}

func (ctl *SiteSettingsController) GetSocialLinks(c *fiber.Ctx) error {
	orgID, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ent, lerr := ctl.loadSocial(orgID, schoolID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *SiteSettingsController) UpdateSocialLinks(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.UpdateSocialLinksRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent, lerr := ctl.loadSocial(orgID, schoolID)
	if lerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	before := socialSnapshot(&ent)
	body.Apply(&ent)
	now := time.Now()
	ent.SocialUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.LogUpdate(ctl.DB, c, "social_links", ent.SocialID, before, socialSnapshot(&ent))
	return helper.JsonUpdated(c, "Social links updated", ent)
}

/* --------------------------- public site reads -------------------------- */

func (ctl *SiteSettingsController) publicSchool(ref string) (model.SchoolModel, error) {
	id, slug := helper.ParseIDOrSlug(ref)
	dbq := ctl.DB.Where("school_is_active = ?", true)
	if slug != "" {
		dbq = dbq.Where("school_slug = ?", slug)
	} else {
		dbq = dbq.Where("school_id = ?", id)
	}
	var sch model.SchoolModel
	err := dbq.First(&sch).Error
	return sch, err
}

// ThemePublic serves the theme for a school's public site. Schools that never
// touched their theme get the defaults, not a 404.
func (ctl *SiteSettingsController) ThemePublic(c *fiber.Ctx) error {
	sch, err := ctl.publicSchool(c.Params("idOrSlug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var ent model.ThemeConfigModel
	if err := ctl.DB.First(&ent, "theme_school_id = ?", sch.SchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", model.DefaultTheme(sch.SchoolOrganizationID, sch.SchoolID))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *SiteSettingsController) SocialLinksPublic(c *fiber.Ctx) error {
	sch, err := ctl.publicSchool(c.Params("idOrSlug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var ent model.SocialLinksModel
	if err := ctl.DB.First(&ent, "social_school_id = ?", sch.SchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "", model.SocialLinksModel{
				SocialOrganizationID: sch.SchoolOrganizationID,
				SocialSchoolID:       sch.SchoolID,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func themeSnapshot(ent *model.ThemeConfigModel) map[string]any {
	return map[string]any{
		"theme_primary_color":    ent.ThemePrimaryColor,
		"theme_secondary_color":  ent.ThemeSecondaryColor,
		"theme_accent_color":     ent.ThemeAccentColor,
		"theme_background_color": ent.ThemeBackgroundColor,
		"theme_foreground_color": ent.ThemeForegroundColor,
		"theme_font_family":      ent.ThemeFontFamily,
		"theme_heading_font":     ent.ThemeHeadingFont,
		"theme_layout_style":     ent.ThemeLayoutStyle,
	}
}

func socialSnapshot(ent *model.SocialLinksModel) map[string]any {
	return map[string]any{
		"social_facebook":  ent.SocialFacebook,
		"social_twitter":   ent.SocialTwitter,
		"social_instagram": ent.SocialInstagram,
		"social_linkedin":  ent.SocialLinkedin,
		"social_youtube":   ent.SocialYoutube,
		"social_whatsapp":  ent.SocialWhatsapp,
	}
}
