// file: internals/features/cms/navigations/controller/navigation_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/navigations/dto"
	"schoolhub_backend/internals/features/cms/navigations/model"
	"schoolhub_backend/internals/features/cms/navigations/service"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type NavigationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNavigationController(db *gorm.DB) *NavigationController {
	return &NavigationController{DB: db, Validator: validator.New()}
}

func (ctl *NavigationController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

// TreePublic renders the visible menu tree for a school's public site.
func (ctl *NavigationController) TreePublic(c *fiber.Ctx) error {
	id, slug := helper.ParseIDOrSlug(c.Params("idOrSlug"))

	var school struct {
		SchoolID uuid.UUID `gorm:"column:school_id"`
	}
	dbq := ctl.DB.Table("schools").Select("school_id").Where("school_is_active = ?", true)
	if slug != "" {
		dbq = dbq.Where("school_slug = ?", slug)
	} else {
		dbq = dbq.Where("school_id = ?", id)
	}
	if err := dbq.Scan(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	if school.SchoolID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	var rows []model.NavigationMenuModel
	if err := ctl.DB.
		Where("navigation_school_id = ? AND navigation_is_visible = ?", school.SchoolID, true).
		Order("navigation_display_order ASC, navigation_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", service.BuildTree(rows))
}

func (ctl *NavigationController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.NavigationMenuModel
	if err := ctl.DB.
		Where("navigation_school_id = ?", schoolID).
		Order("navigation_display_order ASC, navigation_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", service.BuildTree(rows))
}

func (ctl *NavigationController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateNavigationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.NavigationOrganizationID = orgID
	ent.NavigationSchoolID = schoolID
	if ent.NavigationSlug == "" {
		ent.NavigationSlug = helper.GenerateSlug(ent.NavigationTitle)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.NavigationParentID != nil {
			if err := helper.EnsureSchoolOwned(tx, "navigation_menus", "navigation_id",
				"navigation_organization_id", "navigation_school_id",
				*ent.NavigationParentID, orgID, schoolID); err != nil {
				return err
			}
		}
		return tx.Create(&ent).Error
	})
	if txErr != nil {
		return helper.JsonWriteError(c, txErr, "navigation_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "navigation_menu", ent.NavigationID)
	return helper.JsonCreated(c, "Menu item created", ent)
}

func (ctl *NavigationController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateNavigationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.NavigationMenuModel
		if err := tx.First(&ent,
			"navigation_id = ? AND navigation_organization_id = ? AND navigation_school_id = ?",
			id, orgID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		if body.ClearParent {
			ent.NavigationParentID = nil
		} else if body.ParentID != nil {
			if err := helper.EnsureSchoolOwned(tx, "navigation_menus", "navigation_id",
				"navigation_organization_id", "navigation_school_id",
				*body.ParentID, orgID, schoolID); err != nil {
				return err
			}

			var all []model.NavigationMenuModel
			if err := tx.Select("navigation_id", "navigation_parent_id").
				Where("navigation_school_id = ?", schoolID).
				Find(&all).Error; err != nil {
				return err
			}
			parents := make(map[uuid.UUID]*uuid.UUID, len(all))
			for i := range all {
				parents[all[i].NavigationID] = all[i].NavigationParentID
			}
			if service.WouldCycle(id, body.ParentID, parents) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Move would create a menu cycle")
			}
			ent.NavigationParentID = body.ParentID
		}

		if body.Title != nil {
			ent.NavigationTitle = *body.Title
		}
		if body.MenuType != nil {
			ent.NavigationMenuType = *body.MenuType
		}
		if body.URL != nil {
			ent.NavigationURL = *body.URL
		}
		if body.Target != nil {
			ent.NavigationTarget = *body.Target
		}
		if body.DisplayOrder != nil {
			ent.NavigationDisplayOrder = *body.DisplayOrder
		}
		if body.IsVisible != nil {
			ent.NavigationIsVisible = *body.IsVisible
		}

		now := time.Now()
		ent.NavigationUpdatedAt = &now
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr) {
			return helper.JsonConflict(c, "navigation_slug")
		}
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "navigation_menu", id)
	return helper.JsonUpdated(c, "Menu item updated", nil)
}

// Delete reparents children onto the deleted item's parent so the subtree
// survives.
func (ctl *NavigationController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.NavigationMenuModel
		if err := tx.First(&ent,
			"navigation_id = ? AND navigation_organization_id = ? AND navigation_school_id = ?",
			id, orgID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Record not found")
			}
			return err
		}

		if err := tx.Model(&model.NavigationMenuModel{}).
			Where("navigation_parent_id = ?", id).
			Update("navigation_parent_id", ent.NavigationParentID).Error; err != nil {
			return err
		}
		return tx.Delete(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "navigation_menu", id)
	return helper.JsonDeleted(c, "Menu item deleted", nil)
}
