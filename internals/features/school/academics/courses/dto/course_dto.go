// file: internals/features/school/academics/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/courses/model"
)

type CreateCourseRequest struct {
	ClassID        uuid.UUID  `json:"course_class_id" validate:"required"`
	SubjectID      uuid.UUID  `json:"course_subject_id" validate:"required"`
	AcademicYearID uuid.UUID  `json:"course_academic_year_id" validate:"required"`
	TeacherID      *uuid.UUID `json:"course_teacher_id" validate:"omitempty"`
	HoursPerWeek   int        `json:"course_hours_per_week" validate:"omitempty,gte=0,lte=60"`
	Syllabus       string     `json:"course_syllabus" validate:"omitempty"`
}

type UpdateCourseRequest struct {
	TeacherID    *uuid.UUID `json:"course_teacher_id" validate:"omitempty"`
	HoursPerWeek *int       `json:"course_hours_per_week" validate:"omitempty,gte=0,lte=60"`
	Syllabus     *string    `json:"course_syllabus" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	return model.CourseModel{
		CourseClassID:        r.ClassID,
		CourseSubjectID:      r.SubjectID,
		CourseAcademicYearID: r.AcademicYearID,
		CourseTeacherID:      r.TeacherID,
		CourseHoursPerWeek:   r.HoursPerWeek,
		CourseSyllabus:       strings.TrimSpace(r.Syllabus),
	}
}
