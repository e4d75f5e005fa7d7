// file: internals/features/school/academics/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/classes/model"
)

type CreateClassRequest struct {
	Grade     string     `json:"class_grade" validate:"required,max=20"`
	Section   string     `json:"class_section" validate:"required,max=10"`
	Name      string     `json:"class_name" validate:"required,max=100"`
	TeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
	Room      string     `json:"class_room" validate:"omitempty,max=50"`
	Capacity  int        `json:"class_capacity" validate:"omitempty,gt=0"`
}

type UpdateClassRequest struct {
	Grade     *string    `json:"class_grade" validate:"omitempty,max=20"`
	Section   *string    `json:"class_section" validate:"omitempty,max=10"`
	Name      *string    `json:"class_name" validate:"omitempty,max=100"`
	TeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
	Room      *string    `json:"class_room" validate:"omitempty,max=50"`
	Capacity  *int       `json:"class_capacity" validate:"omitempty,gt=0"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	m := model.ClassModel{
		ClassGrade:     strings.TrimSpace(r.Grade),
		ClassSection:   strings.ToUpper(strings.TrimSpace(r.Section)),
		ClassName:      strings.TrimSpace(r.Name),
		ClassTeacherID: r.TeacherID,
		ClassRoom:      strings.TrimSpace(r.Room),
		ClassCapacity:  r.Capacity,
	}
	if m.ClassCapacity == 0 {
		m.ClassCapacity = 40
	}
	return m
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.Grade != nil {
		m.ClassGrade = strings.TrimSpace(*r.Grade)
	}
	if r.Section != nil {
		m.ClassSection = strings.ToUpper(strings.TrimSpace(*r.Section))
	}
	if r.Name != nil {
		m.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.TeacherID != nil {
		m.ClassTeacherID = r.TeacherID
	}
	if r.Room != nil {
		m.ClassRoom = strings.TrimSpace(*r.Room)
	}
	if r.Capacity != nil {
		m.ClassCapacity = *r.Capacity
	}
}
