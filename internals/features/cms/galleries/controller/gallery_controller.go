// file: internals/features/cms/galleries/controller/gallery_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/galleries/dto"
	"schoolhub_backend/internals/features/cms/galleries/model"
	auditService "schoolhub_backend/internals/features/tenants/audit/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type GalleryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db, Validator: validator.New()}
}

func (ctl *GalleryController) tenant(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
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

func publicSchoolID(db *gorm.DB, ref string) (uuid.UUID, error) {
	id, slug := helper.ParseIDOrSlug(ref)
	var row struct {
		SchoolID uuid.UUID `gorm:"column:school_id"`
	}
	dbq := db.Table("schools").Select("school_id").Where("school_is_active = ?", true)
	if slug != "" {
		dbq = dbq.Where("school_slug = ?", slug)
	} else {
		dbq = dbq.Where("school_id = ?", id)
	}
	if err := dbq.Scan(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Query failed")
	}
	if row.SchoolID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Record not found")
	}
	return row.SchoolID, nil
}

// ListPublic returns published galleries for the school site.
func (ctl *GalleryController) ListPublic(c *fiber.Ctx) error {
	schoolID, err := publicSchoolID(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.GalleryModel
	if err := ctl.DB.
		Where("gallery_school_id = ? AND gallery_is_published = ?", schoolID, true).
		Order("gallery_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

// GetPublic returns one published gallery with its images in display order.
func (ctl *GalleryController) GetPublic(c *fiber.Ctx) error {
	schoolID, err := publicSchoolID(ctl.DB, c.Params("idOrSlug"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.GalleryModel
	if err := ctl.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("image_display_order ASC, image_created_at ASC")
		}).
		First(&ent,
			"gallery_school_id = ? AND gallery_slug = ? AND gallery_is_published = ?",
			schoolID, c.Params("gallerySlug"), true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", ent)
}

func (ctl *GalleryController) List(c *fiber.Ctx) error {
	_, schoolID, err := ctl.tenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.GalleryModel
	if err := ctl.DB.
		Where("gallery_school_id = ?", schoolID).
		Order("gallery_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctl *GalleryController) Create(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	var body dto.CreateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	ent := body.ToModel()
	ent.GalleryOrganizationID = orgID
	ent.GallerySchoolID = schoolID
	if ent.GallerySlug == "" {
		ent.GallerySlug = helper.GenerateSlug(ent.GalleryTitle)
	}
	if ent.GalleryEventID != nil {
		if err := helper.EnsureSchoolOwned(ctl.DB, "events", "event_id",
			"event_organization_id", "event_school_id", *ent.GalleryEventID, orgID, schoolID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if sc, err := helperAuth.GetScope(c); err == nil && sc.ProfileID != uuid.Nil {
		pid := sc.ProfileID
		ent.GalleryCreatedBy = &pid
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonWriteError(c, err, "gallery_slug")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "gallery", ent.GalleryID)
	return helper.JsonCreated(c, "Gallery created", ent)
}

func (ctl *GalleryController) Update(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	var ent model.GalleryModel
	if err := ctl.DB.First(&ent,
		"gallery_id = ? AND gallery_organization_id = ? AND gallery_school_id = ?",
		id, orgID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	if body.Title != nil {
		ent.GalleryTitle = *body.Title
	}
	if body.Description != nil {
		ent.GalleryDescription = *body.Description
	}
	if body.CoverURL != nil {
		ent.GalleryCoverURL = body.CoverURL
	}
	if body.IsPublished != nil {
		ent.GalleryIsPublished = *body.IsPublished
	}

	now := time.Now()
	ent.GalleryUpdatedAt = &now

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionUpdate, "gallery", ent.GalleryID)
	return helper.JsonUpdated(c, "Gallery updated", ent)
}

func (ctl *GalleryController) Delete(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_gallery_id = ?", id).Delete(&model.GalleryImageModel{}).Error; err != nil {
			return err
		}
		res := tx.Where(
			"gallery_id = ? AND gallery_organization_id = ? AND gallery_school_id = ?",
			id, orgID, schoolID,
		).Delete(&model.GalleryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "gallery", id)
	return helper.JsonDeleted(c, "Gallery deleted", nil)
}

func (ctl *GalleryController) AddImage(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	galleryID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.AddImageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FiberValidationErrors(err))
	}

	if err := helper.EnsureSchoolOwned(ctl.DB, "galleries", "gallery_id",
		"gallery_organization_id", "gallery_school_id", galleryID, orgID, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := body.ToModel()
	ent.ImageGalleryID = galleryID

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Insert failed")
	}
	auditService.Log(ctl.DB, c, auditService.ActionCreate, "gallery_image", ent.ImageID)
	return helper.JsonCreated(c, "Image added", ent)
}

func (ctl *GalleryController) DeleteImage(c *fiber.Ctx) error {
	orgID, schoolID, terr := ctl.tenant(c)
	if terr != nil {
		return helper.FromFiberError(c, terr)
	}

	galleryID, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	imageID, perr := uuid.Parse(c.Params("imageId"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid image id")
	}

	if err := helper.EnsureSchoolOwned(ctl.DB, "galleries", "gallery_id",
		"gallery_organization_id", "gallery_school_id", galleryID, orgID, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("image_id = ? AND image_gallery_id = ?", imageID, galleryID).
		Delete(&model.GalleryImageModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	auditService.Log(ctl.DB, c, auditService.ActionDelete, "gallery_image", imageID)
	return helper.JsonDeleted(c, "Image deleted", nil)
}
