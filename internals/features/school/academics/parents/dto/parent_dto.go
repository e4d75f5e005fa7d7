// file: internals/features/school/academics/parents/dto/parent_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/parents/model"
)

type CreateParentRequest struct {
	FirstName  string  `json:"parent_first_name" validate:"required,max=100"`
	LastName   string  `json:"parent_last_name" validate:"omitempty,max=100"`
	Relation   string  `json:"parent_relation" validate:"omitempty,oneof=father mother guardian other"`
	Email      *string `json:"parent_email" validate:"omitempty,email"`
	Phone      string  `json:"parent_phone" validate:"required,max=20"`
	Occupation string  `json:"parent_occupation" validate:"omitempty,max=100"`
	Address    string  `json:"parent_address" validate:"omitempty"`
}

type UpdateParentRequest struct {
	FirstName  *string `json:"parent_first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"parent_last_name" validate:"omitempty,max=100"`
	Relation   *string `json:"parent_relation" validate:"omitempty,oneof=father mother guardian other"`
	Email      *string `json:"parent_email" validate:"omitempty,email"`
	Phone      *string `json:"parent_phone" validate:"omitempty,max=20"`
	Occupation *string `json:"parent_occupation" validate:"omitempty,max=100"`
	Address    *string `json:"parent_address" validate:"omitempty"`
}

type LinkStudentRequest struct {
	StudentID uuid.UUID `json:"student_parent_student_id" validate:"required"`
	IsPrimary bool      `json:"student_parent_is_primary"`
}

func (r CreateParentRequest) ToModel() model.ParentModel {
	relation := strings.TrimSpace(strings.ToLower(r.Relation))
	if relation == "" {
		relation = "guardian"
	}
	return model.ParentModel{
		ParentFirstName:  strings.TrimSpace(r.FirstName),
		ParentLastName:   strings.TrimSpace(r.LastName),
		ParentRelation:   relation,
		ParentEmail:      r.Email,
		ParentPhone:      strings.TrimSpace(r.Phone),
		ParentOccupation: strings.TrimSpace(r.Occupation),
		ParentAddress:    strings.TrimSpace(r.Address),
	}
}

func (r UpdateParentRequest) Apply(m *model.ParentModel) {
	if r.FirstName != nil {
		m.ParentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.ParentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Relation != nil {
		m.ParentRelation = strings.ToLower(strings.TrimSpace(*r.Relation))
	}
	if r.Email != nil {
		m.ParentEmail = r.Email
	}
	if r.Phone != nil {
		m.ParentPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Occupation != nil {
		m.ParentOccupation = strings.TrimSpace(*r.Occupation)
	}
	if r.Address != nil {
		m.ParentAddress = strings.TrimSpace(*r.Address)
	}
}
