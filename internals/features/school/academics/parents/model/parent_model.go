// file: internals/features/school/academics/parents/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ParentModel struct {
	ParentID             uuid.UUID `gorm:"column:parent_id;type:uuid;default:gen_random_uuid();primaryKey" json:"parent_id"`
	ParentOrganizationID uuid.UUID `gorm:"column:parent_organization_id;type:uuid;not null;index" json:"parent_organization_id"`
	ParentSchoolID       uuid.UUID `gorm:"column:parent_school_id;type:uuid;not null;index" json:"parent_school_id"`
	ParentFirstName      string    `gorm:"column:parent_first_name;type:varchar(100);not null" json:"parent_first_name"`
	ParentLastName       string    `gorm:"column:parent_last_name;type:varchar(100)" json:"parent_last_name,omitempty"`
	ParentRelation       string    `gorm:"column:parent_relation;type:varchar(20);not null;default:'guardian'" json:"parent_relation"`
	ParentEmail          *string   `gorm:"column:parent_email;type:varchar(255)" json:"parent_email,omitempty"`
	ParentPhone          string    `gorm:"column:parent_phone;type:varchar(20);not null" json:"parent_phone"`
	ParentOccupation     string    `gorm:"column:parent_occupation;type:varchar(100)" json:"parent_occupation,omitempty"`
	ParentAddress        string    `gorm:"column:parent_address;type:text" json:"parent_address,omitempty"`

	ParentCreatedAt time.Time  `gorm:"column:parent_created_at;not null;default:CURRENT_TIMESTAMP" json:"parent_created_at"`
	ParentUpdatedAt *time.Time `gorm:"column:parent_updated_at" json:"parent_updated_at,omitempty"`
}

func (ParentModel) TableName() string { return "parents" }

// StudentParentModel links a student to a parent; one link per pair.
// is_primary marks the contact the school calls first.
type StudentParentModel struct {
	StudentParentID             uuid.UUID `gorm:"column:student_parent_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_parent_id"`
	StudentParentOrganizationID uuid.UUID `gorm:"column:student_parent_organization_id;type:uuid;not null;index:idx_student_parents_pair,unique" json:"student_parent_organization_id"`
	StudentParentStudentID      uuid.UUID `gorm:"column:student_parent_student_id;type:uuid;not null;index:idx_student_parents_pair,unique" json:"student_parent_student_id"`
	StudentParentParentID       uuid.UUID `gorm:"column:student_parent_parent_id;type:uuid;not null;index:idx_student_parents_pair,unique" json:"student_parent_parent_id"`
	StudentParentIsPrimary      bool      `gorm:"column:student_parent_is_primary;not null;default:false" json:"student_parent_is_primary"`

	StudentParentCreatedAt time.Time `gorm:"column:student_parent_created_at;not null;default:CURRENT_TIMESTAMP" json:"student_parent_created_at"`
}

func (StudentParentModel) TableName() string { return "student_parents" }
