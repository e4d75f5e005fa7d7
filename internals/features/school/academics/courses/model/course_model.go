// file: internals/features/school/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// A course is one subject taught to one class in one academic year; the
// unique index makes the triple single-assignment.
type CourseModel struct {
	CourseID             uuid.UUID  `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseOrganizationID uuid.UUID  `gorm:"column:course_organization_id;type:uuid;not null;index:idx_courses_assignment,unique" json:"course_organization_id"`
	CourseSchoolID       uuid.UUID  `gorm:"column:course_school_id;type:uuid;not null;index:idx_courses_assignment,unique" json:"course_school_id"`
	CourseClassID        uuid.UUID  `gorm:"column:course_class_id;type:uuid;not null;index:idx_courses_assignment,unique" json:"course_class_id"`
	CourseSubjectID      uuid.UUID  `gorm:"column:course_subject_id;type:uuid;not null;index:idx_courses_assignment,unique" json:"course_subject_id"`
	CourseAcademicYearID uuid.UUID  `gorm:"column:course_academic_year_id;type:uuid;not null;index:idx_courses_assignment,unique" json:"course_academic_year_id"`
	CourseTeacherID      *uuid.UUID `gorm:"column:course_teacher_id;type:uuid;index" json:"course_teacher_id,omitempty"`
	CourseHoursPerWeek   int        `gorm:"column:course_hours_per_week;not null;default:0" json:"course_hours_per_week"`
	CourseSyllabus       string     `gorm:"column:course_syllabus;type:text" json:"course_syllabus,omitempty"`

	CourseCreatedAt time.Time  `gorm:"column:course_created_at;not null;default:CURRENT_TIMESTAMP" json:"course_created_at"`
	CourseUpdatedAt *time.Time `gorm:"column:course_updated_at" json:"course_updated_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
