// file: internals/features/school/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive      = "active"
	StudentStatusTransferred = "transferred"
	StudentStatusGraduated   = "graduated"
	StudentStatusInactive    = "inactive"
)

var AllStudentStatuses = []string{
	StudentStatusActive,
	StudentStatusTransferred,
	StudentStatusGraduated,
	StudentStatusInactive,
}

// Students count against the organization's plan quota; creation and
// removal bump the subscription counter in the same transaction.
type StudentModel struct {
	StudentID              uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentOrganizationID  uuid.UUID  `gorm:"column:student_organization_id;type:uuid;not null;index:idx_students_org_school_admission,unique" json:"student_organization_id"`
	StudentSchoolID        uuid.UUID  `gorm:"column:student_school_id;type:uuid;not null;index:idx_students_org_school_admission,unique" json:"student_school_id"`
	StudentAdmissionNumber string     `gorm:"column:student_admission_number;type:varchar(50);not null;index:idx_students_org_school_admission,unique" json:"student_admission_number"`
	StudentClassID         *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`

	StudentFirstName   string     `gorm:"column:student_first_name;type:varchar(100);not null" json:"student_first_name"`
	StudentLastName    string     `gorm:"column:student_last_name;type:varchar(100)" json:"student_last_name,omitempty"`
	StudentGender      string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender,omitempty"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`
	StudentBloodGroup  string     `gorm:"column:student_blood_group;type:varchar(5)" json:"student_blood_group,omitempty"`
	StudentEmail       *string    `gorm:"column:student_email;type:varchar(255)" json:"student_email,omitempty"`
	StudentPhone       string     `gorm:"column:student_phone;type:varchar(20)" json:"student_phone,omitempty"`
	StudentAddress     string     `gorm:"column:student_address;type:text" json:"student_address,omitempty"`
	StudentPhotoURL    *string    `gorm:"column:student_photo_url;type:text" json:"student_photo_url,omitempty"`
	StudentAdmissionDate *time.Time `gorm:"column:student_admission_date;type:date" json:"student_admission_date,omitempty"`
	StudentStatus      string     `gorm:"column:student_status;type:varchar(15);not null;default:'active'" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:CURRENT_TIMESTAMP" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
