// file: internals/features/school/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/students/model"
)

type CreateStudentRequest struct {
	AdmissionNumber string     `json:"student_admission_number" validate:"required,max=50"`
	ClassID         *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	FirstName       string     `json:"student_first_name" validate:"required,max=100"`
	LastName        string     `json:"student_last_name" validate:"omitempty,max=100"`
	Gender          string     `json:"student_gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth     *time.Time `json:"student_date_of_birth" validate:"omitempty"`
	BloodGroup      string     `json:"student_blood_group" validate:"omitempty,max=5"`
	Email           *string    `json:"student_email" validate:"omitempty,email"`
	Phone           string     `json:"student_phone" validate:"omitempty,max=20"`
	Address         string     `json:"student_address" validate:"omitempty"`
	AdmissionDate   *time.Time `json:"student_admission_date" validate:"omitempty"`
}

type UpdateStudentRequest struct {
	ClassID     *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	FirstName   *string    `json:"student_first_name" validate:"omitempty,max=100"`
	LastName    *string    `json:"student_last_name" validate:"omitempty,max=100"`
	Gender      *string    `json:"student_gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth *time.Time `json:"student_date_of_birth" validate:"omitempty"`
	BloodGroup  *string    `json:"student_blood_group" validate:"omitempty,max=5"`
	Email       *string    `json:"student_email" validate:"omitempty,email"`
	Phone       *string    `json:"student_phone" validate:"omitempty,max=20"`
	Address     *string    `json:"student_address" validate:"omitempty"`
	PhotoURL    *string    `json:"student_photo_url" validate:"omitempty,url"`
	Status      *string    `json:"student_status" validate:"omitempty,oneof=active inactive graduated transferred"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		StudentClassID:         r.ClassID,
		StudentFirstName:       strings.TrimSpace(r.FirstName),
		StudentLastName:        strings.TrimSpace(r.LastName),
		StudentGender:          r.Gender,
		StudentDateOfBirth:     r.DateOfBirth,
		StudentBloodGroup:      strings.ToUpper(strings.TrimSpace(r.BloodGroup)),
		StudentEmail:           r.Email,
		StudentPhone:           strings.TrimSpace(r.Phone),
		StudentAddress:         strings.TrimSpace(r.Address),
		StudentAdmissionDate:   r.AdmissionDate,
		StudentStatus:          model.StudentStatusActive,
	}
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.ClassID != nil {
		m.StudentClassID = r.ClassID
	}
	if r.FirstName != nil {
		m.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Gender != nil {
		m.StudentGender = *r.Gender
	}
	if r.DateOfBirth != nil {
		m.StudentDateOfBirth = r.DateOfBirth
	}
	if r.BloodGroup != nil {
		m.StudentBloodGroup = strings.ToUpper(strings.TrimSpace(*r.BloodGroup))
	}
	if r.Email != nil {
		m.StudentEmail = r.Email
	}
	if r.Phone != nil {
		m.StudentPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Address != nil {
		m.StudentAddress = strings.TrimSpace(*r.Address)
	}
	if r.PhotoURL != nil {
		m.StudentPhotoURL = r.PhotoURL
	}
	if r.Status != nil {
		m.StudentStatus = *r.Status
	}
}
