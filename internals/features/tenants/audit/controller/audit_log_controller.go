// file: internals/features/tenants/audit/controller/audit_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/audit/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// List is the only read surface; there is deliberately no write surface here.
func (ctl *AuditLogController) List(c *fiber.Ctx) error {
	sc, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	dbq := ctl.DB.Model(&model.AuditLogModel{}).
		Where("audit_log_organization_id = ?", sc.OrganizationID)

	if v := strings.TrimSpace(c.Query("model_name")); v != "" {
		dbq = dbq.Where("audit_log_model_name = ?", v)
	}
	if v := strings.TrimSpace(c.Query("action")); v != "" {
		dbq = dbq.Where("audit_log_action = ?", v)
	}
	if v := strings.TrimSpace(c.Query("object_id")); v != "" {
		dbq = dbq.Where("audit_log_object_id = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Count failed")
	}

	var rows []model.AuditLogModel
	if err := dbq.
		Order("audit_log_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}
