// file: internals/features/tenants/audit/service/audit_service.go
package service

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/tenants/audit/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionDeactivate = "deactivate"
)

// LogAction appends an audit row for a mutation. Pass the write transaction
// as db when the log must commit atomically with the change; otherwise the
// row is written best-effort and a failure only logs.
func LogAction(db *gorm.DB, c *fiber.Ctx, sc helperAuth.Scope, action, modelName string, objectID uuid.UUID, changes map[string]any) error {
	var payload datatypes.JSON
	if len(changes) > 0 {
		if b, err := json.Marshal(changes); err == nil {
			payload = datatypes.JSON(b)
		}
	}

	var actor *uuid.UUID
	if sc.ProfileID != uuid.Nil {
		id := sc.ProfileID
		actor = &id
	}

	row := model.AuditLogModel{
		AuditLogOrganizationID: sc.OrganizationID,
		AuditLogUserID:         actor,
		AuditLogAction:         action,
		AuditLogModelName:      modelName,
		AuditLogObjectID:       objectID,
		AuditLogChanges:        payload,
	}
	if c != nil {
		ip := c.IP()
		row.AuditLogIPAddress = &ip
		row.AuditLogUserAgent = c.Get(fiber.HeaderUserAgent)
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("[ERROR] audit append failed: model=%s action=%s err=%v", modelName, action, err)
		return err
	}
	return nil
}

// Log is the one-line form controllers use after a successful mutation.
// It resolves the actor from the request scope; calls outside a tenant
// scope (platform owner surfaces) are dropped since audit rows are
// org-scoped.
func Log(db *gorm.DB, c *fiber.Ctx, action, modelName string, objectID uuid.UUID) {
	sc, err := helperAuth.GetScope(c)
	if err != nil || sc.OrganizationID == uuid.Nil {
		return
	}
	_ = LogAction(db, c, sc, action, modelName, objectID, nil)
}

// LogUpdate records an update action together with its changed-field diff.
// Snapshots are flat column maps taken before and after the edit is applied.
func LogUpdate(db *gorm.DB, c *fiber.Ctx, modelName string, objectID uuid.UUID, before, after map[string]any) {
	sc, err := helperAuth.GetScope(c)
	if err != nil || sc.OrganizationID == uuid.Nil {
		return
	}
	_ = LogAction(db, c, sc, ActionUpdate, modelName, objectID, Diff(before, after))
}

// Diff builds the changed-field map recorded with update actions.
func Diff(before, after map[string]any) map[string]any {
	out := map[string]any{}
	for k, newVal := range after {
		if oldVal, ok := before[k]; !ok || oldVal != newVal {
			out[k] = map[string]any{"from": before[k], "to": newVal}
		}
	}
	return out
}
