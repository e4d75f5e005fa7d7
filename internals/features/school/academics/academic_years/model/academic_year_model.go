// file: internals/features/school/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// At most one row per school has academic_year_is_current set; the
// controller flips the others off in the same transaction.
type AcademicYearModel struct {
	AcademicYearID             uuid.UUID `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`
	AcademicYearOrganizationID uuid.UUID `gorm:"column:academic_year_organization_id;type:uuid;not null;index:idx_years_org_school_name,unique" json:"academic_year_organization_id"`
	AcademicYearSchoolID       uuid.UUID `gorm:"column:academic_year_school_id;type:uuid;not null;index:idx_years_org_school_name,unique" json:"academic_year_school_id"`
	AcademicYearName           string    `gorm:"column:academic_year_name;type:varchar(50);not null;index:idx_years_org_school_name,unique" json:"academic_year_name"`
	AcademicYearStartDate      time.Time `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEndDate        time.Time `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`
	AcademicYearIsCurrent      bool      `gorm:"column:academic_year_is_current;not null;default:false" json:"academic_year_is_current"`

	AcademicYearCreatedAt time.Time  `gorm:"column:academic_year_created_at;not null;default:CURRENT_TIMESTAMP" json:"academic_year_created_at"`
	AcademicYearUpdatedAt *time.Time `gorm:"column:academic_year_updated_at" json:"academic_year_updated_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
