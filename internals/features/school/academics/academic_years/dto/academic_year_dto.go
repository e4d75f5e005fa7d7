// file: internals/features/school/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	"schoolhub_backend/internals/features/school/academics/academic_years/model"
)

type CreateAcademicYearRequest struct {
	Name      string    `json:"academic_year_name" validate:"required,max=50"`
	StartDate time.Time `json:"academic_year_start_date" validate:"required"`
	EndDate   time.Time `json:"academic_year_end_date" validate:"required,gtfield=StartDate"`
	IsCurrent bool      `json:"academic_year_is_current"`
}

type UpdateAcademicYearRequest struct {
	Name      *string    `json:"academic_year_name" validate:"omitempty,max=50"`
	StartDate *time.Time `json:"academic_year_start_date" validate:"omitempty"`
	EndDate   *time.Time `json:"academic_year_end_date" validate:"omitempty"`
	IsCurrent *bool      `json:"academic_year_is_current" validate:"omitempty"`
}

func (r CreateAcademicYearRequest) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearName:      strings.TrimSpace(r.Name),
		AcademicYearStartDate: r.StartDate,
		AcademicYearEndDate:   r.EndDate,
		AcademicYearIsCurrent: r.IsCurrent,
	}
}
