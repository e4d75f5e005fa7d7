// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"schoolhub_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Code        string `json:"subject_code" validate:"required,max=20"`
	Name        string `json:"subject_name" validate:"required,max=100"`
	Description string `json:"subject_description" validate:"omitempty"`
	IsElective  bool   `json:"subject_is_elective"`
}

type UpdateSubjectRequest struct {
	Code        *string `json:"subject_code" validate:"omitempty,max=20"`
	Name        *string `json:"subject_name" validate:"omitempty,max=100"`
	Description *string `json:"subject_description" validate:"omitempty"`
	IsElective  *bool   `json:"subject_is_elective" validate:"omitempty"`
	IsActive    *bool   `json:"subject_is_active" validate:"omitempty"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCode:        strings.ToUpper(strings.TrimSpace(r.Code)),
		SubjectName:        strings.TrimSpace(r.Name),
		SubjectDescription: strings.TrimSpace(r.Description),
		SubjectIsElective:  r.IsElective,
		SubjectIsActive:    true,
	}
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.Code != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Name != nil {
		m.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.SubjectDescription = strings.TrimSpace(*r.Description)
	}
	if r.IsElective != nil {
		m.SubjectIsElective = *r.IsElective
	}
	if r.IsActive != nil {
		m.SubjectIsActive = *r.IsActive
	}
}
