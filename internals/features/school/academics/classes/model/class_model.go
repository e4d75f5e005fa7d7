// file: internals/features/school/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// class_teacher_id points at a user profile; removing the teacher nulls it
// (ON DELETE SET NULL) rather than taking the class down with them.
type ClassModel struct {
	ClassID             uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassOrganizationID uuid.UUID  `gorm:"column:class_organization_id;type:uuid;not null;index:idx_classes_org_school_grade_section,unique" json:"class_organization_id"`
	ClassSchoolID       uuid.UUID  `gorm:"column:class_school_id;type:uuid;not null;index:idx_classes_org_school_grade_section,unique" json:"class_school_id"`
	ClassGrade          string     `gorm:"column:class_grade;type:varchar(20);not null;index:idx_classes_org_school_grade_section,unique" json:"class_grade"`
	ClassSection        string     `gorm:"column:class_section;type:varchar(10);not null;index:idx_classes_org_school_grade_section,unique" json:"class_section"`
	ClassName           string     `gorm:"column:class_name;type:varchar(100);not null" json:"class_name"`
	ClassTeacherID      *uuid.UUID `gorm:"column:class_teacher_id;type:uuid;index" json:"class_teacher_id,omitempty"`
	ClassRoom           string     `gorm:"column:class_room;type:varchar(50)" json:"class_room,omitempty"`
	ClassCapacity       int        `gorm:"column:class_capacity;not null;default:40" json:"class_capacity"`

	ClassCreatedAt time.Time  `gorm:"column:class_created_at;not null;default:CURRENT_TIMESTAMP" json:"class_created_at"`
	ClassUpdatedAt *time.Time `gorm:"column:class_updated_at" json:"class_updated_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
