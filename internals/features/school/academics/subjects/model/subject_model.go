// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID             uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectOrganizationID uuid.UUID `gorm:"column:subject_organization_id;type:uuid;not null;index:idx_subjects_org_school_code,unique" json:"subject_organization_id"`
	SubjectSchoolID       uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null;index:idx_subjects_org_school_code,unique" json:"subject_school_id"`
	SubjectCode           string    `gorm:"column:subject_code;type:varchar(20);not null;index:idx_subjects_org_school_code,unique" json:"subject_code"`
	SubjectName           string    `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`
	SubjectDescription    string    `gorm:"column:subject_description;type:text" json:"subject_description,omitempty"`
	SubjectIsElective     bool      `gorm:"column:subject_is_elective;not null;default:false" json:"subject_is_elective"`
	SubjectIsActive       bool      `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`

	SubjectCreatedAt time.Time  `gorm:"column:subject_created_at;not null;default:CURRENT_TIMESTAMP" json:"subject_created_at"`
	SubjectUpdatedAt *time.Time `gorm:"column:subject_updated_at" json:"subject_updated_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
