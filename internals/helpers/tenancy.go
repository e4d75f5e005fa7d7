// file: internals/helpers/tenancy.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenancy guard: every FK on a row must resolve to the same organization as
// the row itself. The checks run inside the write transaction, before commit.

var ErrCrossTenant = fiber.NewError(fiber.StatusNotFound, "Record not found")

// EnsureOrgOwned verifies that table row `id` exists and carries the given
// organization id. Missing and cross-tenant look identical to the caller.
func EnsureOrgOwned(db *gorm.DB, table, idCol, orgCol string, id, orgID uuid.UUID) error {
	var cnt int64
	if err := db.Table(table).
		Where(idCol+" = ? AND "+orgCol+" = ?", id, orgID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Tenant check failed")
	}
	if cnt == 0 {
		return ErrCrossTenant
	}
	return nil
}

// EnsureSchoolOwned verifies a row belongs to both the school and the
// organization, catching org/school drift on doubly-keyed rows.
func EnsureSchoolOwned(db *gorm.DB, table, idCol, orgCol, schoolCol string, id, orgID, schoolID uuid.UUID) error {
	var cnt int64
	if err := db.Table(table).
		Where(idCol+" = ? AND "+orgCol+" = ? AND "+schoolCol+" = ?", id, orgID, schoolID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Tenant check failed")
	}
	if cnt == 0 {
		return ErrCrossTenant
	}
	return nil
}

// EnsureSchoolInOrg verifies school.organization_id == orgID. Used whenever a
// row carries both keys, so the pair can never drift apart.
func EnsureSchoolInOrg(db *gorm.DB, schoolID, orgID uuid.UUID) error {
	return EnsureOrgOwned(db, "schools", "school_id", "school_organization_id", schoolID, orgID)
}

// SchoolIDForOrg resolves the organization's school. Org-level admins have
// no school on their profile, so school-scoped writes fall back to this.
func SchoolIDForOrg(db *gorm.DB, orgID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		SchoolID uuid.UUID `gorm:"column:school_id"`
	}
	if err := db.Table("schools").
		Select("school_id").
		Where("school_organization_id = ?", orgID).
		Scan(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Tenant check failed")
	}
	if row.SchoolID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Organization has no school yet")
	}
	return row.SchoolID, nil
}
